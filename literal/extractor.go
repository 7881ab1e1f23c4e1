package literal

import "github.com/coregx/bytere/syntax"

// Prefix returns the literal every match of prog must start with.
//
// The prefix is the run of plain OpLiteral instructions at the beginning of
// the program; it stops at the first instruction of any other kind,
// including closures over literals. Complete is set when the run reaches
// OpEnd, meaning the program matches exactly that byte string.
//
// Anchored programs yield an empty prefix: the only candidate offset is 0
// and a prefilter has nothing to skip.
//
// Example:
//
//	prog, _ := syntax.Compile("hello.*", syntax.DefaultCapacity)
//	lit := literal.Prefix(prog)
//	// lit.Bytes == "hello", lit.Complete == false
func Prefix(prog *syntax.Prog) Literal {
	var buf []byte
	pc := 0
	for ; pc < prog.Len(); pc++ {
		inst := prog.Inst(pc)
		if inst.Op != syntax.OpLiteral {
			break
		}
		buf = append(buf, inst.Byte)
	}
	complete := len(buf) > 0 && prog.Inst(pc).Op == syntax.OpEnd
	return NewLiteral(buf, complete)
}
