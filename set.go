package bytere

import (
	"fmt"

	"github.com/coregx/bytere/literal"
	"github.com/coregx/bytere/meta"
	"github.com/coregx/bytere/prefilter"
)

// Set matches a subject against several patterns at once and reports the
// leftmost match among them.
//
// Patterns that are plain literals share a single Aho-Corasick scan; the
// rest are searched one by one.
//
// Example:
//
//	set, _ := bytere.CompileSet([]string{"error", "warn", "[0-9]+ms"})
//	idx, start, end, ok := set.Search([]byte("took 30ms, warn"))
//	// idx == 2, start == 5, end == 9, ok == true
type Set struct {
	patterns []string
	regexes  []*Regex

	// literal members, in pattern order
	literals *literal.Seq
	litIndex []int
	multi    prefilter.Prefilter

	// everything else
	others []int
}

// CompileSet compiles every pattern with the default configuration.
// The error names the index of the first pattern that fails.
func CompileSet(patterns []string) (*Set, error) {
	s := &Set{
		patterns: append([]string(nil), patterns...),
		regexes:  make([]*Regex, len(patterns)),
		literals: literal.NewSeq(),
	}

	for i, p := range patterns {
		re, err := Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		s.regexes[i] = re

		if re.Strategy() == meta.UseLiteral {
			s.literals.Add(re.engine.Literal())
			s.litIndex = append(s.litIndex, i)
		} else {
			s.others = append(s.others, i)
		}
	}

	multi, err := prefilter.NewMulti(s.literals)
	if err != nil {
		return nil, fmt.Errorf("build literal automaton: %w", err)
	}
	s.multi = multi
	return s, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the patterns the set was compiled from.
func (s *Set) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Search returns the match with the lowest start offset across all
// patterns, breaking ties by the lowest pattern index. ok is false if no
// pattern matches.
func (s *Set) Search(subject []byte) (index, start, end int, ok bool) {
	index, start, end = -1, -1, -1

	better := func(i, st int) bool {
		return !ok || st < start || (st == start && i < index)
	}

	if s.multi != nil {
		if pos := s.multi.Find(subject, 0); pos >= 0 {
			// Seq order is pattern order, so the first hit is the lowest index.
			hits := s.literals.MatchesAt(subject, pos)
			if len(hits) > 0 {
				lit := s.literals.Get(hits[0])
				index, start, end, ok = s.litIndex[hits[0]], pos, pos+lit.Len(), true
			}
		}
	}

	for _, i := range s.others {
		st, en, found := s.regexes[i].findAt(subject, 0)
		if found && better(i, st) {
			index, start, end, ok = i, st, en, true
		}
	}
	return index, start, end, ok
}

// Match reports whether any pattern matches subject.
func (s *Set) Match(subject []byte) bool {
	if s.multi != nil && s.multi.Find(subject, 0) >= 0 {
		return true
	}
	for _, i := range s.others {
		if s.regexes[i].Match(subject) {
			return true
		}
	}
	return false
}
