package backtrack

import "github.com/coregx/bytere/syntax"

// compare walks prog from instruction pc against subject starting at pos.
// It returns the end offset of the match, or ok=false if the remaining
// program cannot match at pos.
//
//nolint:gocyclo,cyclop // complexity is inherent to instruction dispatch
func compare(prog *syntax.Prog, pc int, subject []byte, pos int) (end int, ok bool) {
	for {
		inst := prog.Inst(pc)
		switch inst.Op {
		case syntax.OpEnd:
			return pos, true

		case syntax.OpOptional:
			// Take the byte if the wrapped instruction accepts it; never
			// revisit that choice.
			pos += step(inst.Sub, subject, pos).width()
			pc++

		case syntax.OpStar, syntax.OpPlus:
			return closure(prog, pc, subject, pos)

		default:
			s := step(inst, subject, pos)
			if s == NoMatch {
				return -1, false
			}
			pos += s.width()
			pc++
		}
	}
}

// closure matches the Star or Plus instruction at pc greedily and then
// backtracks one repetition at a time until the rest of the program
// matches or the minimum repetition count is reached.
//
// Every wrapped instruction is atomic and consumes exactly one byte per
// repetition, so the high-water mark alone records every intermediate
// position.
func closure(prog *syntax.Prog, pc int, subject []byte, pos int) (end int, ok bool) {
	inst := prog.Inst(pc)

	minReps := 0
	if inst.Op == syntax.OpPlus {
		minReps = 1
	}

	start := pos
	for step(inst.Sub, subject, pos) == OneByte {
		pos++
	}
	if pos-start < minReps {
		return -1, false
	}

	pc++
	if prog.Inst(pc).Op == syntax.OpEnd {
		return pos, true
	}

	for ; pos >= start+minReps; pos-- {
		if end, ok := compare(prog, pc, subject, pos); ok {
			return end, true
		}
	}
	return -1, false
}
