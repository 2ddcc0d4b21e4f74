// Command kmp runs a single demonstration search and logs the result.
//
// It takes no arguments and reads no environment.
package main

import (
	"log/slog"
	"os"

	"github.com/coregx/kmp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	needle := []byte("ABCABABC")
	haystack := []byte("ABCABCABABC")

	m := kmp.MustCompile(needle)
	pos, ok := m.Find(haystack)

	logger.Info("search complete",
		"needle", m.String(),
		"table", m.Table().String(),
		"haystack_len", len(haystack),
		"found", ok,
		"position", pos,
	)
}
