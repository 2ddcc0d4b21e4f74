package kmp

import (
	"fmt"
	"strconv"
)

// Matcher is a compiled needle: the needle bytes together with the
// PrefixTable built for them.
//
// Pairing the two at construction is what makes Search safe to call: a
// Matcher can never scan with a table built for some other needle.
//
// A Matcher is immutable and safe to use concurrently from multiple
// goroutines.
//
// Example:
//
//	m := kmp.MustCompile([]byte("ABCABABC"))
//	pos := m.Index([]byte("ABXABCABABC"))
//	// pos == 3
type Matcher struct {
	needle []byte
	table  PrefixTable
	config Config
}

// Compile builds a Matcher for needle using DefaultConfig.
//
// The needle is copied; changing the caller's slice afterwards does not
// affect the Matcher.
//
// Example:
//
//	m, err := kmp.Compile([]byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(needle []byte) (*Matcher, error) {
	return CompileWithConfig(needle, DefaultConfig())
}

// MustCompile builds a Matcher and panics if it fails.
//
// This is useful for needles known at compile time.
//
// Example:
//
//	var crlf = kmp.MustCompile([]byte("\r\n\r\n"))
func MustCompile(needle []byte) *Matcher {
	m, err := Compile(needle)
	if err != nil {
		panic("kmp: Compile(" + strconv.Quote(string(needle)) + "): " + err.Error())
	}
	return m
}

// CompileWithConfig builds a Matcher with custom configuration.
//
// Returns an error matching ErrInvalidConfig if config does not validate,
// or ErrNeedleTooLong if needle is longer than config.MaxNeedleLen.
//
// Example:
//
//	config := kmp.DefaultConfig().WithMemchr(false)
//	m, err := kmp.CompileWithConfig([]byte("AAAB"), config)
func CompileWithConfig(needle []byte, config Config) (*Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if len(needle) > config.MaxNeedleLen {
		return nil, &Error{
			Kind:    NeedleTooLong,
			Message: fmt.Sprintf("needle length %d exceeds MaxNeedleLen %d", len(needle), config.MaxNeedleLen),
		}
	}

	owned := make([]byte, len(needle))
	copy(owned, needle)

	return &Matcher{
		needle: owned,
		table:  Prepare(owned),
		config: config,
	}, nil
}

// Index returns the offset of the first occurrence of the needle in haystack,
// or -1 if it is not present.
//
// Index agrees with bytes.Index for every input.
func (m *Matcher) Index(haystack []byte) int {
	return scan(m.needle, m.table, haystack, m.config.UseMemchr)
}

// IndexString is like Index but searches a string.
func (m *Matcher) IndexString(s string) int {
	return m.Index([]byte(s))
}

// Find returns the offset of the first occurrence of the needle in haystack
// and whether one was found.
func (m *Matcher) Find(haystack []byte) (int, bool) {
	pos := m.Index(haystack)
	return pos, pos >= 0
}

// Match reports whether haystack contains the needle.
func (m *Matcher) Match(haystack []byte) bool {
	return m.Index(haystack) >= 0
}

// MatchString reports whether s contains the needle.
func (m *Matcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}

// Needle returns a copy of the compiled needle.
func (m *Matcher) Needle() []byte {
	out := make([]byte, len(m.needle))
	copy(out, m.needle)
	return out
}

// Table returns a copy of the needle's PrefixTable.
func (m *Matcher) Table() PrefixTable {
	out := make(PrefixTable, len(m.table))
	copy(out, m.table)
	return out
}

// Len returns the needle length in bytes.
func (m *Matcher) Len() int {
	return len(m.needle)
}

// String returns the needle as a quoted Go string literal.
func (m *Matcher) String() string {
	return strconv.Quote(string(m.needle))
}
