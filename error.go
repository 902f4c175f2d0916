package peg

import (
	"fmt"

	"github.com/parsekit/peg/input"
)

// Error represents an error while parsing.
//
// The error carries the position at which the parse gave up, so callers
// can report the exact unconsumed suffix rather than a generic message.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the error occurred at.
	Position() input.Position
}

// ExpectationError is the one non-recoverable parse error: a required
// continuation after an expectation point did not match. Enclosing
// alternatives do not retry once it is raised.
type ExpectationError struct {
	Expected string
	Pos      input.Position
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message())
}

func (e *ExpectationError) Message() string {
	return fmt.Sprintf("expected %s", e.Expected)
}

func (e *ExpectationError) Position() input.Position { return e.Pos }

// UnconsumedError is returned by ParseString when the grammar matched
// only a strict prefix of the input.
type UnconsumedError struct {
	Pos  input.Position
	Rest string
}

func (u *UnconsumedError) Error() string {
	return fmt.Sprintf("%s: unconsumed input %q", u.Pos, u.Rest)
}

func (u *UnconsumedError) Message() string {
	return fmt.Sprintf("unconsumed input %q", u.Rest)
}

func (u *UnconsumedError) Position() input.Position { return u.Pos }

type parseError struct {
	message string
	pos     input.Position
}

func (p *parseError) Error() string   { return fmt.Sprintf("%s: %s", p.pos, p.message) }
func (p *parseError) Message() string { return p.message }

func (p *parseError) Position() input.Position { return p.pos }

// Errorf creates an Error at the given position.
func Errorf(pos input.Position, format string, args ...interface{}) Error {
	return &parseError{message: fmt.Sprintf(format, args...), pos: pos}
}

// failure carries a terminal error out of a parse via panic. Only Fail
// and Must raise it; Run recovers it.
type failure struct {
	err error
}

// Fail terminates the current parse immediately with err. Unlike an
// ordinary mismatch, no enclosing alternative will be retried. Semantic
// actions use it to surface evaluation errors as the line's result.
func Fail(err error) {
	panic(failure{err})
}

func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		if f, ok := msg.(failure); ok {
			*err = f.err
			return
		}
		panic(msg)
	}
}
