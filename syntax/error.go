// Package syntax compiles byte-oriented regular expressions into a compact
// instruction program.
//
// The dialect is deliberately small:
//
//	c        literal byte (after escape decoding)
//	.        any byte except '\n'
//	^        start of buffer (only as the first element)
//	$        end of buffer (only as the last source character)
//	[...]    byte class, [^...] negated, a-z ranges
//	x* x+ x? closures over a single atomic element
//
// Escapes: \b \f \n \r \s \t \e, \^X (control), \xHH, \OOO (octal), and \c
// for any other character c.
package syntax

import (
	"errors"
	"fmt"
)

// Compile errors. A *Error returned by Compile always wraps one of these.
var (
	// ErrIllegalPattern indicates malformed source: an empty pattern, a
	// closure with nothing to repeat, or an unterminated class.
	ErrIllegalPattern = errors.New("illegal pattern")

	// ErrPatternTooLong indicates the compiled program would exceed the
	// requested capacity.
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrOutOfMemory indicates the compiler refused to reserve storage for
	// the requested capacity.
	ErrOutOfMemory = errors.New("out of memory")
)

// Error describes a failure to compile a pattern.
type Error struct {
	Pattern string
	Offset  int
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Pattern == "" {
		return "bytere: " + e.Err.Error()
	}
	return fmt.Sprintf("bytere: %v at offset %d in pattern %q", e.Err, e.Offset, e.Pattern)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
