package peg

import (
	"github.com/parsekit/peg/input"
)

// Pair is the attribute of a two-element sequence.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the attribute of a three-element sequence.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Seq2 matches a then b. The attribute is the pair of both attributes.
// If b fails the cursor is restored to where the sequence started.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(cur *input.Cursor) (Pair[A, B], bool) {
		start := cur.Pos()
		av, ok := a(cur)
		if !ok {
			return Pair[A, B]{}, false
		}
		bv, ok := b(cur)
		if !ok {
			cur.Restore(start)
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{av, bv}, true
	}
}

// Seq3 matches a then b then c.
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return func(cur *input.Cursor) (Triple[A, B, C], bool) {
		start := cur.Pos()
		av, ok := a(cur)
		if !ok {
			return Triple[A, B, C]{}, false
		}
		bv, ok := b(cur)
		if !ok {
			cur.Restore(start)
			return Triple[A, B, C]{}, false
		}
		cv, ok := c(cur)
		if !ok {
			cur.Restore(start)
			return Triple[A, B, C]{}, false
		}
		return Triple[A, B, C]{av, bv, cv}, true
	}
}

// Alt tries each alternative in order from the same starting position
// and returns the first that matches. Ordered choice, not longest
// match.
func Alt[A any](alternatives ...Parser[A]) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		start := cur.Pos()
		for _, p := range alternatives {
			if a, ok := p(cur); ok {
				return a, true
			}
			cur.Restore(start)
		}
		var zero A
		return zero, false
	}
}

// Star applies p until it fails. It always succeeds, possibly with an
// empty sequence. Iteration stops if p matches without consuming, so a
// nullable p cannot loop forever.
func Star[A any](p Parser[A]) Parser[[]A] {
	return func(cur *input.Cursor) ([]A, bool) {
		var out []A
		for {
			mark := cur.Pos()
			a, ok := p(cur)
			if !ok || cur.Pos() == mark {
				return out, true
			}
			out = append(out, a)
		}
	}
}

// Plus is Star requiring at least one match.
func Plus[A any](p Parser[A]) Parser[[]A] {
	star := Star(p)
	return func(cur *input.Cursor) ([]A, bool) {
		first, ok := p(cur)
		if !ok {
			return nil, false
		}
		rest, _ := star(cur)
		return append([]A{first}, rest...), true
	}
}

// Opt matches p or nothing. The attribute is nil when p did not match.
func Opt[A any](p Parser[A]) Parser[*A] {
	return func(cur *input.Cursor) (*A, bool) {
		if a, ok := p(cur); ok {
			return &a, true
		}
		return nil, true
	}
}

// Peek succeeds iff p would match here, without consuming input.
func Peek[A any](p Parser[A]) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		start := cur.Pos()
		a, ok := p(cur)
		cur.Restore(start)
		return a, ok
	}
}

// Not succeeds iff p would not match here, without consuming input.
func Not[A any](p Parser[A]) Parser[struct{}] {
	return func(cur *input.Cursor) (struct{}, bool) {
		start := cur.Pos()
		_, ok := p(cur)
		cur.Restore(start)
		return struct{}{}, !ok
	}
}

// Diff matches p only where except would not match, e.g. any character
// that is not a closing quote.
func Diff[A, B any](p Parser[A], except Parser[B]) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		start := cur.Pos()
		if _, ok := except(cur); ok {
			cur.Restore(start)
			var zero A
			return zero, false
		}
		return p(cur)
	}
}

// Must turns a mismatch of p into a terminal *ExpectationError: the
// parse is abandoned, no enclosing alternative is retried. expected
// describes what was required.
func Must[A any](p Parser[A], expected string) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		a, ok := p(cur)
		if !ok {
			cur.Skip()
			Fail(&ExpectationError{Expected: expected, Pos: cur.Pos()})
		}
		return a, true
	}
}

// Expect matches a then b, where failure of b is terminal. It is
// Seq2(a, Must(b, expected)).
func Expect[A, B any](a Parser[A], b Parser[B], expected string) Parser[Pair[A, B]] {
	return Seq2(a, Must(b, expected))
}

// SepBy matches one or more items separated by sep. Separator
// attributes are discarded.
func SepBy[A, S any](item Parser[A], sep Parser[S]) Parser[[]A] {
	return func(cur *input.Cursor) ([]A, bool) {
		first, ok := item(cur)
		if !ok {
			return nil, false
		}
		out := []A{first}
		for {
			mark := cur.Pos()
			if _, ok := sep(cur); !ok {
				return out, true
			}
			next, ok := item(cur)
			if !ok {
				cur.Restore(mark)
				return out, true
			}
			out = append(out, next)
		}
	}
}

// Perm2 matches a and b in any order, each at most once, until neither
// can match. It fails only if neither matched at all. The attribute
// fields are nil for operands that did not occur.
func Perm2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[*A, *B]] {
	return func(cur *input.Cursor) (Pair[*A, *B], bool) {
		var out Pair[*A, *B]
		for progress := true; progress; {
			progress = false
			if out.A == nil {
				if av, ok := a(cur); ok {
					out.A = &av
					progress = true
					continue
				}
			}
			if out.B == nil {
				if bv, ok := b(cur); ok {
					out.B = &bv
					progress = true
				}
			}
		}
		if out.A == nil && out.B == nil {
			return out, false
		}
		return out, true
	}
}

// Perm3 is Perm2 for three operands.
func Perm3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[*A, *B, *C]] {
	return func(cur *input.Cursor) (Triple[*A, *B, *C], bool) {
		var out Triple[*A, *B, *C]
		for progress := true; progress; {
			progress = false
			if out.A == nil {
				if av, ok := a(cur); ok {
					out.A = &av
					progress = true
					continue
				}
			}
			if out.B == nil {
				if bv, ok := b(cur); ok {
					out.B = &bv
					progress = true
					continue
				}
			}
			if out.C == nil {
				if cv, ok := c(cur); ok {
					out.C = &cv
					progress = true
				}
			}
		}
		if out.A == nil && out.B == nil && out.C == nil {
			return out, false
		}
		return out, true
	}
}

// OrElse matches a optionally followed by b, or b alone.
func OrElse[A, B any](a Parser[A], b Parser[B]) Parser[Pair[*A, *B]] {
	optB := Opt(b)
	return func(cur *input.Cursor) (Pair[*A, *B], bool) {
		if av, ok := a(cur); ok {
			bv, _ := optB(cur)
			return Pair[*A, *B]{&av, bv}, true
		}
		if bv, ok := b(cur); ok {
			return Pair[*A, *B]{nil, &bv}, true
		}
		return Pair[*A, *B]{}, false
	}
}

// Map applies f to the attribute of p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(cur *input.Cursor) (B, bool) {
		a, ok := p(cur)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	}
}

// Verify gates p on a predicate over its synthesized attribute. The
// predicate inspects the attribute only; it cannot consume input. On
// rejection the cursor is restored to where p started.
func Verify[A any](p Parser[A], accept func(A) bool) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		start := cur.Pos()
		a, ok := p(cur)
		if !ok {
			return a, false
		}
		if !accept(a) {
			cur.Restore(start)
			var zero A
			return zero, false
		}
		return a, true
	}
}

// PlusIndexed repeatedly applies element(i), where i is the number of
// elements matched so far, until one fails. It fails if element(0)
// fails. This is the fold-with-index form of Plus, for grammars whose
// repeated element is position-dependent, such as a connective keyword
// that must differ on the first iteration.
func PlusIndexed[A any](element func(i int) Parser[A]) Parser[[]A] {
	return func(cur *input.Cursor) ([]A, bool) {
		var out []A
		for {
			a, ok := element(len(out))(cur)
			if !ok {
				if len(out) == 0 {
					return nil, false
				}
				return out, true
			}
			out = append(out, a)
		}
	}
}

// Lexeme skips leading whitespace once, then matches p with skipping
// suppressed, so p sees the input character-exact.
func Lexeme[A any](p Parser[A]) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		cur.Skip()
		cur.EnterLexeme()
		defer cur.LeaveLexeme()
		return p(cur)
	}
}

// A Rule is a named grammar rule that may be referenced before it is
// defined, so mutually recursive rules can be tied together without
// infinite construction-time recursion.
type Rule[A any] struct {
	name string
	p    Parser[A]
}

// NewRule creates an undefined rule. The name appears in the panic
// raised if the rule is used before Define.
func NewRule[A any](name string) *Rule[A] {
	return &Rule[A]{name: name}
}

// Define binds the rule to p.
func (r *Rule[A]) Define(p Parser[A]) {
	r.p = p
}

// Parser returns a parser that lazily invokes the rule's definition.
func (r *Rule[A]) Parser() Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		if r.p == nil {
			panic("peg: rule " + r.name + " used before Define")
		}
		return r.p(cur)
	}
}
