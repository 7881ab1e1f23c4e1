// Package simd provides fast byte and substring search for the prefilters.
//
// On CPUs with wide vector units (AVX2 or SSE4.2 on x86-64, ASIMD on arm64)
// searches go through the runtime's vectorized bytes.IndexByte. Everywhere
// else a pure Go SWAR loop scans eight bytes per iteration.
package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// vectorMinLen is the haystack length below which the SWAR loop wins over
// the vector path's setup cost.
const vectorMinLen = 32

// hasVector is set at init from the detected CPU features.
var hasVector = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasVector && len(haystack) >= vectorMinLen {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// memchrGeneric scans haystack eight bytes at a time.
//
// The needle is broadcast into every byte of a uint64 and XORed with each
// chunk so matching bytes become zero. The classic zero-byte test
// (v - 0x01..01) & ^v & 0x80..80 then flags them; the lowest flagged byte is
// always exact, so its trailing-zero count locates the match.
func memchrGeneric(haystack []byte, needle byte) int {
	const (
		lo8 = 0x0101010101010101
		hi8 = 0x8080808080808080
	)
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		v := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if found := (v - lo8) & ^v & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
