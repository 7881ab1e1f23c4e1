package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an instruction and determines which Inst fields are valid.
type Op uint8

const (
	// OpEnd terminates every program. Reaching it means the pattern matched.
	OpEnd Op = iota

	// OpLiteral matches the single byte Inst.Byte.
	OpLiteral

	// OpAnyByte matches any byte except '\n'.
	OpAnyByte

	// OpBeginAnchor matches the empty string at the start of the buffer.
	OpBeginAnchor

	// OpEndAnchor matches the empty string at the end of the buffer.
	OpEndAnchor

	// OpClass matches one byte contained in Inst.Class.
	OpClass

	// OpOptional matches Inst.Sub zero or one time.
	OpOptional

	// OpStar matches Inst.Sub zero or more times.
	OpStar

	// OpPlus matches Inst.Sub one or more times.
	OpPlus
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpEnd:
		return "End"
	case OpLiteral:
		return "Literal"
	case OpAnyByte:
		return "AnyByte"
	case OpBeginAnchor:
		return "BeginAnchor"
	case OpEndAnchor:
		return "EndAnchor"
	case OpClass:
		return "Class"
	case OpOptional:
		return "Optional"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// IsClosure reports whether op wraps another instruction.
func (op Op) IsClosure() bool {
	return op == OpOptional || op == OpStar || op == OpPlus
}

// IsAtomic reports whether op consumes exactly one byte and may be wrapped
// by a closure.
func (op Op) IsAtomic() bool {
	return op == OpLiteral || op == OpAnyByte || op == OpClass
}

// IsAnchor reports whether op is a zero-width assertion.
func (op Op) IsAnchor() bool {
	return op == OpBeginAnchor || op == OpEndAnchor
}

// Inst is one element of a compiled program.
// The Op determines which of the remaining fields are meaningful.
type Inst struct {
	Op Op

	// Byte is the literal value for OpLiteral.
	Byte byte

	// Class is the membership set for OpClass.
	Class *ByteSet

	// Sub is the wrapped atomic instruction for OpOptional, OpStar and OpPlus.
	Sub *Inst
}

// Slot costs against a program's capacity. A class reserves its 256-bit
// bitmap inline as sixteen 16-bit words.
const (
	instSlots    = 1
	closureSlots = 1
	classSlots   = instSlots + 256/16
)

// slots returns the capacity consumed by i, including any wrapped instruction.
func (i *Inst) slots() int {
	switch {
	case i.Op.IsClosure():
		return closureSlots + i.Sub.slots()
	case i.Op == OpClass:
		return classSlots
	default:
		return instSlots
	}
}

// String returns a human-readable representation of the instruction
func (i *Inst) String() string {
	switch i.Op {
	case OpLiteral:
		return fmt.Sprintf("Literal(%s)", formatByte(i.Byte))
	case OpClass:
		return "Class" + i.Class.String()
	case OpOptional, OpStar, OpPlus:
		return fmt.Sprintf("%s(%s)", i.Op, i.Sub)
	default:
		return i.Op.String()
	}
}

// Prog is a compiled pattern: an ordered instruction sequence terminated
// by OpEnd. A Prog is immutable once Compile returns it and may be shared
// by any number of concurrent searches.
type Prog struct {
	insts   []Inst
	pattern string
	slots   int
}

// Inst returns the instruction at pc. pc must be in [0, Len()).
//
// The result points into the shared program, Sub and Class included.
// Callers must treat it as read-only.
func (p *Prog) Inst(pc int) *Inst {
	return &p.insts[pc]
}

// Len returns the number of instructions, including the trailing OpEnd.
func (p *Prog) Len() int {
	return len(p.insts)
}

// Slots returns the capacity consumed by the program.
func (p *Prog) Slots() int {
	return p.slots
}

// Pattern returns the source text the program was compiled from.
func (p *Prog) Pattern() string {
	return p.pattern
}

// Anchored reports whether the program begins with a start anchor and so
// can only match at offset 0.
func (p *Prog) Anchored() bool {
	return len(p.insts) > 0 && p.insts[0].Op == OpBeginAnchor
}

// String dumps the program one instruction per line.
func (p *Prog) String() string {
	var sb strings.Builder
	for pc := range p.insts {
		fmt.Fprintf(&sb, "%3d  %s\n", pc, &p.insts[pc])
	}
	return sb.String()
}
