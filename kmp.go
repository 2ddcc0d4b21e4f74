// Package kmp provides Knuth-Morris-Pratt substring search over byte slices.
//
// Searching is split into two pure steps:
//   - Prepare builds a PrefixTable for a needle in one left-to-right pass
//   - Search scans a haystack for the needle's first occurrence using that table
//
// The haystack is scanned in linear time and no haystack byte is examined
// again once the match has moved past it. A table may be reused across any
// number of haystacks and goroutines; building it once per needle is the
// whole point of the split.
//
// Basic usage:
//
//	needle := []byte("ABCABABC")
//	table := kmp.Prepare(needle)
//	pos, ok := kmp.Search(needle, table, []byte("ABCABCABABC"))
//	// pos == 3, ok == true
//
// Most callers should use Matcher instead, which keeps the needle and its
// table together so they cannot drift apart:
//
//	m := kmp.MustCompile([]byte("needle"))
//	if m.Match(haystack) {
//	    println("found")
//	}
//
// Limitations:
//   - Only the first occurrence is reported
//   - Matching is byte-exact (no case folding, no Unicode awareness)
//   - The whole haystack must be in memory
package kmp

import (
	"fmt"
	"strings"

	"github.com/coregx/kmp/internal/conv"
	"github.com/coregx/kmp/simd"
)

// Fallback is one entry of a PrefixTable.
//
// It is a tagged optional length. None means no part of the current partial
// match can be reused after a mismatch. Some(0) means the empty prefix is
// reused, which is distinct from None: with Some(0) the candidate alignment
// moves up to the mismatching byte, while None moves it by max(1, i).
//
// The zero value is None.
type Fallback struct {
	n  uint32
	ok bool
}

// None returns the empty Fallback.
func None() Fallback {
	return Fallback{}
}

// Some returns a Fallback holding prefix length n.
// Panics if n is negative or does not fit in uint32.
func Some(n int) Fallback {
	return Fallback{n: conv.IntToUint32(n), ok: true}
}

// Get returns the prefix length and whether one is present.
func (f Fallback) Get() (int, bool) {
	return int(f.n), f.ok
}

// IsNone reports whether f holds no prefix length.
func (f Fallback) IsNone() bool {
	return !f.ok
}

// String returns "None" or "Some(n)".
func (f Fallback) String() string {
	if !f.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", f.n)
}

// PrefixTable holds the failure function for a needle.
//
// The table has exactly one entry per needle byte. Entry i describes how much
// of a partial match of length i survives a mismatch at needle[i]:
//   - table[0] is always None
//   - if table[i] is Some(n) then n < i and needle[:n] is a border of needle[:i]
//     (a proper prefix that is also a suffix)
//
// A PrefixTable is never modified after Prepare returns it.
type PrefixTable []Fallback

// String formats the table as "[None None Some(1)]".
func (t PrefixTable) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Prepare builds the PrefixTable for needle.
//
// The table is filled in a single pass: each entry is written once, computed
// from the needle and entries already written. Entries trail the scan by one
// position, so table[i] is the fallback known before needle[i] is examined.
//
// When extending the running border fails, the entry at the border's end is
// consulted once more (the failure of the failure). This keeps the table from
// pointing at a prefix whose next byte would fail again on the same haystack
// byte, and it never recurses, so long runs of a single byte cost nothing
// extra.
//
// Prepare is total: every byte slice, including an empty one, is a valid
// needle. A needle of length 0 yields an empty table and a needle of
// length 1 yields [None].
//
// Example:
//
//	kmp.Prepare([]byte("AAA"))      // [None None Some(1)]
//	kmp.Prepare([]byte("ABCABABC")) // [None None None None Some(1) Some(2) Some(1) Some(2)]
func Prepare(needle []byte) PrefixTable {
	table := make(PrefixTable, 0, len(needle))
	if len(needle) == 0 {
		return table
	}

	// Mismatching the first byte has nothing to fall back on.
	table = append(table, None())

	var running Fallback
	for i := 1; i < len(needle); i++ {
		table = append(table, running)

		// Position of the next expected byte of the running border.
		matchIndex, _ := running.Get()

		switch {
		case needle[i] == needle[matchIndex]:
			running = Some(matchIndex + 1)
		case extendsInner(needle, table, matchIndex, i):
			inner, _ := table[matchIndex].Get()
			running = Some(inner + 1)
		case needle[i] == needle[0]:
			running = Some(1)
		default:
			running = None()
		}
	}

	return table
}

// extendsInner reports whether needle[i] continues the border recorded at
// table[matchIndex].
func extendsInner(needle []byte, table PrefixTable, matchIndex, i int) bool {
	inner, ok := table[matchIndex].Get()
	return ok && needle[i] == needle[inner]
}

// Search returns the offset of the first occurrence of needle in haystack.
//
// table must be the PrefixTable Prepare built for needle. Search does not
// verify this. With any other table the result is unspecified, but Search
// still never indexes out of bounds and always returns: entries past the end
// of the table, and entries Some(n) with n not below their own index, are
// read as None.
//
// An empty needle matches at offset 0 of every haystack, including an empty
// one. This is part of the contract, not a side effect of the loop.
//
// Search allocates nothing and is safe to call concurrently with the same
// arguments.
//
// Example:
//
//	needle := []byte("ABCABABC")
//	pos, ok := kmp.Search(needle, kmp.Prepare(needle), []byte("XABABCABABC"))
//	// pos == 3, ok == true
func Search(needle []byte, table PrefixTable, haystack []byte) (int, bool) {
	pos := scan(needle, table, haystack, false)
	return pos, pos >= 0
}

// scan runs the KMP transition loop and returns the match offset or -1.
//
// s is the start of the candidate alignment and i the number of needle bytes
// matched against it. Every iteration either increases i or increases s, and
// s+i never decreases.
//
// With skip set, an alignment with nothing matched yet jumps straight to the
// next occurrence of needle[0]. The alignments skipped over would each fail
// at i == 0 and advance by one, so the result is unchanged.
func scan(needle []byte, table PrefixTable, haystack []byte, skip bool) int {
	if len(needle) == 0 {
		return 0
	}

	s, i := 0, 0
	for {
		if i >= len(needle) {
			return s
		}
		if s+i >= len(haystack) {
			return -1
		}

		if skip && i == 0 {
			next := simd.Memchr(haystack[s:], needle[0])
			if next < 0 {
				return -1
			}
			s += next
		}

		if needle[i] == haystack[s+i] {
			i++
			continue
		}

		n, ok := fallbackAt(table, i)
		if !ok {
			s += max(1, i)
			i = 0
			continue
		}
		s += i - n
		i = n
	}
}

// fallbackAt reads table[i], treating anything that could stall or overrun
// the scan as None.
func fallbackAt(table PrefixTable, i int) (int, bool) {
	if i >= len(table) {
		return 0, false
	}
	n, ok := table[i].Get()
	if !ok || n >= i {
		return 0, false
	}
	return n, true
}
