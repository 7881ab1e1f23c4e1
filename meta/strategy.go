package meta

import (
	"strconv"

	"github.com/coregx/bytere/literal"
	"github.com/coregx/bytere/syntax"
)

// Strategy represents the execution strategy for a compiled program.
type Strategy int

const (
	// UseBacktrack tries every offset with the backtracker.
	// Selected when the program has no leading literal or the prefilter
	// is disabled.
	UseBacktrack Strategy = iota

	// UseAnchored runs a single comparison at offset 0.
	// Selected for programs starting with the ^ anchor.
	UseAnchored

	// UseLiteral answers from the prefilter alone.
	// Selected when the whole program is a literal byte string.
	UseLiteral

	// UsePrefilter finds candidates with the prefilter and verifies each
	// one with a single comparison.
	// Selected when the program starts with a literal byte string.
	UsePrefilter
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "UseBacktrack"
	case UseAnchored:
		return "UseAnchored"
	case UseLiteral:
		return "UseLiteral"
	case UsePrefilter:
		return "UsePrefilter"
	default:
		return "Unknown"
	}
}

// SelectStrategy picks the strategy for prog under config, along with the
// leading literal that UseLiteral and UsePrefilter search for.
func SelectStrategy(prog *syntax.Prog, config Config) (Strategy, literal.Literal) {
	if prog.Anchored() {
		return UseAnchored, literal.Literal{}
	}
	if !config.EnablePrefilter {
		return UseBacktrack, literal.Literal{}
	}

	lit := literal.Prefix(prog)
	switch {
	case lit.IsEmpty():
		return UseBacktrack, lit
	case lit.Complete:
		return UseLiteral, lit
	default:
		return UsePrefilter, lit
	}
}

// StrategyReason returns a one-line explanation of why strategy was
// chosen, for debugging output.
func StrategyReason(strategy Strategy, lit literal.Literal) string {
	switch strategy {
	case UseAnchored:
		return "pattern is anchored at the start; one comparison at offset 0"
	case UseLiteral:
		return "pattern is the literal " + quote(lit.Bytes) + "; substring search only"
	case UsePrefilter:
		return "pattern starts with the literal " + quote(lit.Bytes) + "; candidates verified by backtracking"
	case UseBacktrack:
		return "no leading literal; backtracking at every offset"
	default:
		return "unknown strategy"
	}
}

func quote(b []byte) string {
	return strconv.Quote(string(b))
}
