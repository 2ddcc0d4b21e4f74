// Package simd provides word-parallel byte scanning for the KMP matcher.
//
// The matcher uses Memchr to jump the candidate alignment to the next
// occurrence of the needle's first byte while no partial match is in
// progress. Memchr processes 8 bytes per step with SWAR (SIMD Within A
// Register) arithmetic on uint64 words, so it needs no assembly and no CPU
// feature detection.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Memchr is equivalent to bytes.IndexByte.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - lo8) & ^v & hi8
//  4. Locate the first zero byte with a trailing zero count
//
// Inputs shorter than 8 bytes, and the tail of longer ones, are compared
// byte by byte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	idx := 0
	if n >= 8 {
		mask := uint64(needle) * lo8
		for ; idx+8 <= n; idx += 8 {
			xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
			// The borrow can flag a 0x01 byte above a real zero, but
			// never one below it, so the lowest flag is exact.
			if found := (xor - lo8) & ^xor & hi8; found != 0 {
				return idx + bits.TrailingZeros64(found)/8
			}
		}
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}
