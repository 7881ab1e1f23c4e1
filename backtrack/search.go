package backtrack

import "github.com/coregx/bytere/syntax"

// Search finds the first match of prog in subject.
// Returns (start, end, true) if found, (-1, -1, false) otherwise.
//
// An anchored program is tried at offset 0 only. Otherwise every offset
// from 0 to len(subject) inclusive is tried in order, so patterns that can
// match the empty string also match at the very end of the subject.
//
// prog must be a successfully compiled program.
func Search(prog *syntax.Prog, subject []byte) (start, end int, ok bool) {
	return SearchAt(prog, subject, 0)
}

// SearchAt is like Search but ignores matches starting before at.
// Anchors keep referring to the whole of subject: an anchored program can
// only match when at is 0.
func SearchAt(prog *syntax.Prog, subject []byte, at int) (start, end int, ok bool) {
	if at < 0 || at > len(subject) {
		return -1, -1, false
	}

	if prog.Anchored() {
		if at != 0 {
			return -1, -1, false
		}
		if end, ok := compare(prog, 0, subject, 0); ok {
			return 0, end, true
		}
		return -1, -1, false
	}

	for start := at; start <= len(subject); start++ {
		if end, ok := compare(prog, 0, subject, start); ok {
			return start, end, true
		}
	}
	return -1, -1, false
}

// MatchAt runs a single comparison of prog against subject at offset pos.
// It returns the end of the match starting exactly at pos, if any.
func MatchAt(prog *syntax.Prog, subject []byte, pos int) (end int, ok bool) {
	if pos < 0 || pos > len(subject) {
		return -1, false
	}
	return compare(prog, 0, subject, pos)
}

// IsMatch reports whether prog matches anywhere in subject.
func IsMatch(prog *syntax.Prog, subject []byte) bool {
	_, _, ok := Search(prog, subject)
	return ok
}
