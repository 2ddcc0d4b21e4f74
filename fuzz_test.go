// Fuzz tests comparing KMP search against bytes.Index.
//
// Run fuzz tests with:
//
//	go test -fuzz=FuzzSearch -fuzztime=30s
//	go test -fuzz=FuzzPrepare -fuzztime=30s
//	go test -fuzz=FuzzSearchAnyTable -fuzztime=30s
package kmp

import (
	"bytes"
	"testing"
)

// Common needle/haystack pairs for seeding the fuzz corpus
var seedPairs = [][2]string{
	{"", ""},
	{"", "hello"},
	{"A", ""},
	{"AAA", "AAAA"},
	{"ABC", "ABABC"},
	{"ABCABABC", "ABCABCABABC"},
	{"ABCABABC", "ABXABCABABC"},
	{"ABCABABC", "XABABCABABC"},
	{"ABABABXYZ", "ABABABABABXYZ"},
	{"XYZ", "ABC"},
	{"\x00\x01", "\x00\x00\x01"},
}

func FuzzSearch(f *testing.F) {
	for _, p := range seedPairs {
		f.Add([]byte(p[0]), []byte(p[1]))
	}

	f.Fuzz(func(t *testing.T, needle, haystack []byte) {
		want := bytes.Index(haystack, needle)

		got, ok := Search(needle, Prepare(needle), haystack)
		if got != want || ok != (want >= 0) {
			t.Errorf("Search(%q, %q) = (%d, %v), stdlib = %d", needle, haystack, got, ok, want)
		}

		m := MustCompile(needle)
		if idx := m.Index(haystack); idx != want {
			t.Errorf("Matcher(%q).Index(%q) = %d, stdlib = %d", needle, haystack, idx, want)
		}
	})
}

func FuzzPrepare(f *testing.F) {
	for _, p := range seedPairs {
		f.Add([]byte(p[0]))
	}

	f.Fuzz(func(t *testing.T, needle []byte) {
		table := Prepare(needle)
		if len(table) != len(needle) {
			t.Fatalf("len(Prepare(%q)) = %d", needle, len(table))
		}
		for i, entry := range table {
			n, ok := entry.Get()
			if i == 0 && ok {
				t.Fatalf("Prepare(%q)[0] = %v, want None", needle, entry)
			}
			if ok && (n >= i || !bytes.Equal(needle[:n], needle[i-n:i])) {
				t.Fatalf("Prepare(%q)[%d] = %v is not a proper border", needle, i, entry)
			}
		}
	})
}

// FuzzSearchAnyTable scans with a table derived from arbitrary bytes. Only
// termination and bounds are checked; the result itself is unspecified.
func FuzzSearchAnyTable(f *testing.F) {
	f.Add([]byte("ABAB"), []byte{0, 1, 2, 3}, []byte("ABABABAB"))
	f.Add([]byte("A"), []byte{}, []byte("A"))

	f.Fuzz(func(t *testing.T, needle, raw, haystack []byte) {
		table := make(PrefixTable, len(raw))
		for i, b := range raw {
			if b&0x80 != 0 {
				table[i] = Some(int(b & 0x7f))
			}
		}

		got, ok := Search(needle, table, haystack)
		if ok != (got >= 0) {
			t.Fatalf("Search = (%d, %v): ok disagrees with offset", got, ok)
		}
		if ok && got+len(needle) > len(haystack) {
			t.Fatalf("Search = %d overruns haystack of %d bytes", got, len(haystack))
		}
	})
}
