package syntax

import (
	"math/bits"
	"strconv"
	"strings"
)

// ByteSet is a 256-bit membership set over byte values.
//
// Every value 0x00-0xFF is addressable, including NUL, so classes stay
// 8-bit clean. The zero value is the empty set.
type ByteSet [4]uint64

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// AddRange inserts every byte between lo and hi inclusive.
// The endpoints may be given in either order.
func (s *ByteSet) AddRange(lo, hi byte) {
	if lo > hi {
		lo, hi = hi, lo
	}
	for c := int(lo); c <= int(hi); c++ {
		s.Add(byte(c))
	}
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Negate flips all 256 bits.
func (s *ByteSet) Negate() {
	for i := range s {
		s[i] = ^s[i]
	}
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Single returns the only member of the set, if it has exactly one.
func (s *ByteSet) Single() (byte, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	for i, w := range s {
		if w != 0 {
			return byte(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// String renders the set as a bracketed list of ranges, e.g. [0x30-0x39 0x5f].
func (s *ByteSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for lo := 0; lo < 256; lo++ {
		if !s.Contains(byte(lo)) {
			continue
		}
		hi := lo
		for hi+1 < 256 && s.Contains(byte(hi+1)) {
			hi++
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(formatByte(byte(lo)))
		if hi > lo {
			sb.WriteByte('-')
			sb.WriteString(formatByte(byte(hi)))
		}
		lo = hi
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatByte(b byte) string {
	if b > ' ' && b < 0x7f && b != '\'' {
		return "'" + string(b) + "'"
	}
	return "0x" + strconv.FormatUint(uint64(b), 16)
}
