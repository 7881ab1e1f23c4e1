// Package literal provides types and operations for representing literal
// byte sequences extracted from compiled programs.
//
// The primary use case is prefilter optimization: a program that begins
// with "hello" can only match where "hello" occurs, so candidate offsets
// can be found with a fast substring search before running the matcher.
package literal

import "bytes"

// Literal represents a literal byte sequence extracted from a program.
// The Complete flag indicates whether this literal represents a complete match
// (true) or just a prefix of potential matches (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello.*world/ → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	// If true, finding this literal is sufficient (no matcher needed).
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal has no bytes.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered collection of literals, typically one per pattern of
// a pattern set.
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Add appends lit to the sequence.
func (s *Seq) Add(lit Literal) {
	s.literals = append(s.literals, lit)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Index returns the index of the first literal whose bytes equal b, or -1.
func (s *Seq) Index(b []byte) int {
	if s == nil {
		return -1
	}
	for i, lit := range s.literals {
		if bytes.Equal(lit.Bytes, b) {
			return i
		}
	}
	return -1
}

// MatchesAt returns the indices of every literal that occurs in haystack
// starting exactly at pos, in sequence order.
func (s *Seq) MatchesAt(haystack []byte, pos int) []int {
	if s == nil || pos < 0 || pos > len(haystack) {
		return nil
	}
	var out []int
	for i, lit := range s.literals {
		if bytes.HasPrefix(haystack[pos:], lit.Bytes) {
			out = append(out, i)
		}
	}
	return out
}
