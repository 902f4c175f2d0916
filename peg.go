// Package peg implements typed parsing combinators: small parsers that
// compose into recursive grammars and synthesize typed attributes as
// they consume input.
//
// A Parser[A] matches a prefix of the input and produces an attribute
// of type A. Parsers compose structurally:
//
//	Sequence        Seq2(a, b), Seq3(a, b, c)
//	Alternative     Alt(a, b, ...)      ordered choice
//	Kleene star     Star(a)             zero or more
//	Plus            Plus(a)             one or more
//	Optional        Opt(a)
//	And-predicate   Peek(a)             look-ahead, consumes nothing
//	Not-predicate   Not(a)              look-ahead, consumes nothing
//	Difference      Diff(a, b)          a but not b
//	Expectation     Expect(a, b, desc)  b must follow; failure is terminal
//	List            SepBy(a, sep)       a (sep a)*
//	Permutation     Perm2(a, b)         each at most once, any order
//	Sequential-or   OrElse(a, b)        a (b)? / b
//
// Attributes are shaped with Map, gated with Verify, and recursive
// rules are tied with Rule. Ordinary mismatch is a value (the boolean
// returned by the parser), never an error; the only hard error during
// a parse is an expectation failure, which abandons backtracking for
// the whole input.
//
// Between tokens the engine skips whitespace (configurable per call via
// Options); Lexeme suppresses skipping for character-exact sub-rules
// such as identifiers and string literals.
package peg

import (
	"github.com/parsekit/peg/input"
)

// A Parser consumes input from a cursor and synthesizes an attribute of
// type A. It returns false if it did not match, in which case it must
// have left the cursor where it started.
type Parser[A any] func(*input.Cursor) (A, bool)

// Run applies p to a prefix of src and returns the synthesized
// attribute and the position the parse consumed up to. Trailing
// skippable runes are consumed. Callers enforcing a full match should
// compare the end position against len(src), or use ParseString.
//
// The returned error is non-nil only for an expectation failure, a
// semantic Fail, or an outright mismatch; in the latter case it carries
// the furthest position a token failed to match at.
func Run[A any](p Parser[A], src string, options ...Option) (attr A, end input.Position, err error) {
	cfg := newConfig(options)
	cur := input.New(src, cfg.skip)
	defer recoverToError(&err)
	attr, ok := p(cur)
	if !ok {
		err = Errorf(cur.Furthest(), "no match")
		return attr, cur.Furthest(), err
	}
	cur.Skip()
	return attr, cur.Pos(), nil
}

// ParseString applies p to src and requires it to consume the entire
// input. A match of a strict prefix is an *UnconsumedError carrying the
// exact unconsumed suffix.
func ParseString[A any](p Parser[A], src string, options ...Option) (A, error) {
	attr, end, err := Run(p, src, options...)
	if err != nil {
		return attr, err
	}
	if end.Offset < len(src) {
		return attr, &UnconsumedError{Pos: end, Rest: src[end.Offset:]}
	}
	return attr, nil
}
