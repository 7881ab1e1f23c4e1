// Package prefilter provides fast candidate filtering for search using
// literals extracted from compiled programs.
//
// A prefilter rejects offsets of the haystack where no match can start,
// so the backtracking matcher only runs at offsets that begin with the
// program's required literal. The choice of prefilter follows the literal:
//   - single byte → memchr (simd.Memchr)
//   - longer literal → memmem (simd.Memmem)
//   - several literals → Aho-Corasick automaton (NewMulti)
//
// Example usage:
//
//	prog, _ := syntax.Compile("hello.*", syntax.DefaultCapacity)
//	pf := prefilter.New(literal.Prefix(prog))
//
//	haystack := []byte("say hello there")
//	pos := pf.Find(haystack, 0)
//	// pos == 4
package prefilter

import (
	"github.com/coregx/bytere/literal"
	"github.com/coregx/bytere/simd"
)

// Prefilter is used to quickly find candidate match positions before running
// the matcher.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// start, or -1 if no candidate is found.
	//
	// A candidate is an offset where the prefilter literal occurs. It does
	// NOT guarantee a full match unless IsComplete reports true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is always a full match.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete is true, so the
	// match end is start + LiteralLen(). It returns 0 when the prefilter is
	// incomplete or matches literals of varying lengths.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int
}

// MatchFinder is an optional interface for prefilters that can return
// the matched range directly, for literals of varying length.
type MatchFinder interface {
	// FindMatch returns the start and end positions of the first match.
	// Returns (-1, -1) if not found.
	FindMatch(haystack []byte, start int) (int, int)
}

// New returns the prefilter for a single literal, or nil if the literal is
// empty and so cannot narrow the search.
func New(lit literal.Literal) Prefilter {
	switch lit.Len() {
	case 0:
		return nil
	case 1:
		return &memchrPrefilter{needle: lit.Bytes[0], complete: lit.Complete}
	default:
		needle := make([]byte, lit.Len())
		copy(needle, lit.Bytes)
		return &memmemPrefilter{needle: needle, complete: lit.Complete}
	}
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}
