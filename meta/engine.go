package meta

import (
	"github.com/coregx/bytere/backtrack"
	"github.com/coregx/bytere/literal"
	"github.com/coregx/bytere/prefilter"
	"github.com/coregx/bytere/syntax"
)

// Engine runs searches for one compiled program using the strategy chosen
// at construction.
//
// An Engine is immutable and safe for concurrent use.
//
// Example:
//
//	engine, err := meta.Compile("hello.*", meta.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m := engine.Find([]byte("say hello")); m != nil {
//	    println(m.Start(), m.End()) // 4 9
//	}
type Engine struct {
	prog      *syntax.Prog
	config    Config
	strategy  Strategy
	literal   literal.Literal
	prefilter prefilter.Prefilter
}

// Compile validates config, compiles pattern and builds an engine for it.
//
// Errors are either *ConfigError or the *syntax.Error from compilation.
func Compile(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := syntax.Compile(pattern, config.Capacity)
	if err != nil {
		return nil, err
	}
	return NewEngine(prog, config), nil
}

// NewEngine builds an engine for an already compiled program.
func NewEngine(prog *syntax.Prog, config Config) *Engine {
	strategy, lit := SelectStrategy(prog, config)
	e := &Engine{
		prog:     prog,
		config:   config,
		strategy: strategy,
		literal:  lit,
	}
	if strategy == UseLiteral || strategy == UsePrefilter {
		e.prefilter = prefilter.New(lit)
	}
	return e
}

// Prog returns the compiled program.
func (e *Engine) Prog() *syntax.Prog {
	return e.prog
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Literal returns the leading literal the prefilter searches for. It is
// empty for UseAnchored and UseBacktrack.
func (e *Engine) Literal() literal.Literal {
	return e.literal
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Find returns the first match in haystack, or nil.
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the first match in haystack starting at or after at.
// Anchors refer to the whole haystack, so ^ never matches when at > 0.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	start, end, found := e.FindIndicesAt(haystack, at)
	if !found {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// FindIndices returns the span of the first match without allocating.
func (e *Engine) FindIndices(haystack []byte) (start, end int, found bool) {
	return e.FindIndicesAt(haystack, 0)
}

// FindIndicesAt is FindAt without the Match allocation.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	return e.findIndicesAt(haystack, at, e.newTracker())
}

// newTracker returns a fresh prefilter tracker, or nil unless the
// strategy is UsePrefilter.
func (e *Engine) newTracker() *prefilter.Tracker {
	if e.strategy != UsePrefilter {
		return nil
	}
	return prefilter.NewTracker(e.prefilter)
}

// findIndicesAt searches from at. tracker carries prefilter statistics
// across the successive searches of one iteration.
func (e *Engine) findIndicesAt(haystack []byte, at int, tracker *prefilter.Tracker) (int, int, bool) {
	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}

	switch e.strategy {
	case UseAnchored:
		return e.findAnchored(haystack, at)
	case UseLiteral:
		return e.findLiteral(haystack, at)
	case UsePrefilter:
		return e.findPrefilter(haystack, at, tracker)
	default:
		return backtrack.SearchAt(e.prog, haystack, at)
	}
}

// IsMatch reports whether the program matches anywhere in haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, found := e.FindIndicesAt(haystack, 0)
	return found
}

func (e *Engine) findAnchored(haystack []byte, at int) (int, int, bool) {
	if at != 0 {
		return -1, -1, false
	}
	if end, ok := backtrack.MatchAt(e.prog, haystack, 0); ok {
		return 0, end, true
	}
	return -1, -1, false
}

func (e *Engine) findLiteral(haystack []byte, at int) (int, int, bool) {
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return -1, -1, false
	}
	return pos, pos + e.prefilter.LiteralLen(), true
}

// findPrefilter verifies prefilter candidates one by one, falling back to
// the search driver once tracker retires. The leading literal is
// non-empty, so no match can start at len(haystack).
func (e *Engine) findPrefilter(haystack []byte, at int, tracker *prefilter.Tracker) (int, int, bool) {
	for pos := at; pos < len(haystack); {
		if !tracker.IsActive() {
			return backtrack.SearchAt(e.prog, haystack, pos)
		}
		cand := tracker.Find(haystack, pos)
		if cand < 0 {
			break
		}
		if end, ok := backtrack.MatchAt(e.prog, haystack, cand); ok {
			tracker.ConfirmMatch()
			return cand, end, true
		}
		pos = cand + 1
	}
	return -1, -1, false
}

// FindAllIndices returns the spans of successive non-overlapping matches.
// An empty match directly after a non-empty one is skipped, and after an
// empty match the search resumes one byte later. If n >= 0 at most n
// spans are returned.
func (e *Engine) FindAllIndices(haystack []byte, n int) [][2]int {
	var out [][2]int
	e.each(haystack, n, func(start, end int) {
		out = append(out, [2]int{start, end})
	})
	return out
}

// Count returns the number of matches FindAllIndices would return.
func (e *Engine) Count(haystack []byte, n int) int {
	count := 0
	e.each(haystack, n, func(int, int) { count++ })
	return count
}

func (e *Engine) each(haystack []byte, n int, yield func(start, end int)) {
	if n == 0 {
		return
	}
	e.eachTracked(haystack, n, e.newTracker(), yield)
}

// eachTracked is each with one prefilter tracker shared by every search,
// so matches confirmed early keep the prefilter active for later ones.
func (e *Engine) eachTracked(haystack []byte, n int, tracker *prefilter.Tracker, yield func(start, end int)) {
	count := 0
	lastEnd := -1
	for pos := 0; pos <= len(haystack); {
		start, end, found := e.findIndicesAt(haystack, pos, tracker)
		if !found {
			return
		}

		if start == end {
			pos = end + 1
			if start == lastEnd {
				continue
			}
		} else {
			pos = end
			lastEnd = end
		}

		yield(start, end)
		count++
		if n > 0 && count >= n {
			return
		}
	}
}
