package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. An empty needle matches at 0,
// the same as bytes.Index.
//
// Candidates are found by running Memchr for the rarest byte of needle
// (see RareByte) and each candidate is verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	rare, offset := RareByte(needle)

	// The rare byte can only sit in [offset, len(haystack)-n+offset].
	from := offset
	last := len(haystack) - n + offset
	for from <= last {
		pos := Memchr(haystack[from:last+1], rare)
		if pos < 0 {
			return -1
		}
		start := from + pos - offset
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}
		from += pos + 1
	}
	return -1
}
