// Package backtrack executes compiled programs with a recursive
// backtracking matcher.
//
// Closures are greedy: they consume as many bytes as their wrapped
// instruction accepts and then give them back one at a time until the rest
// of the program matches. Optional elements consume a byte when they can
// and never give it back. Worst-case running time is exponential in the
// number of closures; the recursion depth equals the number of closures in
// the program and does not depend on the subject length.
//
// Nothing in this package mutates the program, so a single *syntax.Prog
// can be searched from many goroutines at once.
package backtrack

import "github.com/coregx/bytere/syntax"

// Step is the outcome of matching one instruction at one position.
type Step uint8

const (
	// NoMatch means the instruction rejected the position.
	NoMatch Step = iota

	// ZeroWidth means an anchor matched without consuming input.
	ZeroWidth

	// OneByte means the instruction consumed exactly one byte.
	OneByte
)

// String returns a human-readable representation of the Step
func (s Step) String() string {
	switch s {
	case NoMatch:
		return "NoMatch"
	case ZeroWidth:
		return "ZeroWidth"
	case OneByte:
		return "OneByte"
	default:
		return "Unknown"
	}
}

// width returns the number of bytes a successful step consumed.
func (s Step) width() int {
	if s == OneByte {
		return 1
	}
	return 0
}

// step tests a single non-closure instruction against subject at pos.
// Anchors refer to the whole buffer: the start anchor only matches at
// offset 0 and the end anchor only at len(subject).
func step(inst *syntax.Inst, subject []byte, pos int) Step {
	switch inst.Op {
	case syntax.OpBeginAnchor:
		if pos == 0 {
			return ZeroWidth
		}
	case syntax.OpEndAnchor:
		if pos == len(subject) {
			return ZeroWidth
		}
	case syntax.OpAnyByte:
		if pos < len(subject) && subject[pos] != '\n' {
			return OneByte
		}
	case syntax.OpClass:
		if pos < len(subject) && inst.Class.Contains(subject[pos]) {
			return OneByte
		}
	case syntax.OpLiteral:
		if pos < len(subject) && subject[pos] == inst.Byte {
			return OneByte
		}
	}
	return NoMatch
}
