package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/bytere/literal"
)

// multiPrefilter finds the leftmost occurrence of any of several literals
// with an Aho-Corasick automaton.
type multiPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
	size     int
}

// NewMulti builds a prefilter over every literal of seq.
//
// It returns nil when seq is empty or any literal in it is empty: an empty
// literal occurs at every offset and the prefilter could skip nothing.
// The prefilter is complete only if every literal is.
func NewMulti(seq *literal.Seq) (Prefilter, error) {
	if seq.IsEmpty() {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	complete := true
	size := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if lit.IsEmpty() {
			return nil, nil
		}
		builder.AddPattern(lit.Bytes)
		complete = complete && lit.Complete
		size += lit.Len()
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &multiPrefilter{auto: auto, complete: complete, size: size}, nil
}

// Find implements Prefilter.Find.
func (p *multiPrefilter) Find(haystack []byte, start int) int {
	s, _ := p.FindMatch(haystack, start)
	return s
}

// FindMatch implements MatchFinder.
func (p *multiPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start >= len(haystack) {
		return -1, -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// IsComplete implements Prefilter.IsComplete.
func (p *multiPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen. Literals vary in length, so
// callers use FindMatch for the end.
func (p *multiPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes implements Prefilter.HeapBytes. The automaton's own tables are
// not visible, so this counts the pattern bytes only.
func (p *multiPrefilter) HeapBytes() int {
	return p.size
}
