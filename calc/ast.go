// Package calc parses and evaluates integer arithmetic expressions
// with +, -, *, /, unary sign and parentheses.
//
//	expression <- term (('+' term) / ('-' term))*
//	term       <- factor (('*' factor) / ('/' factor))*
//	factor     <- uint / '(' expression ')' / ('-' factor) / ('+' factor)
//
// Precedence is structural: term binds tighter than expression, and
// same-precedence operators fold left to right, so "8-3-2" is (8-3)-2.
package calc

import (
	"fmt"
	"strings"
)

// Operand is a tagged union: exactly one field is set. The Signed and
// Sub variants recurse into the union through a pointer, which keeps
// the type finite.
type Operand struct {
	Number *uint
	Signed *SignedNumber
	Sub    *Program
}

// SignedNumber applies a unary '+' or '-' to its operand.
type SignedNumber struct {
	Sign    rune
	Operand *Operand
}

// Operation is one step of a left fold: apply Operator between the
// running value and Operand.
type Operation struct {
	Operator rune
	Operand  *Operand
}

// Program is a first operand followed by operations applied to it left
// to right.
type Program struct {
	First *Operand
	Rest  []*Operation
}

func (o *Operand) String() string {
	switch {
	case o.Number != nil:
		return fmt.Sprintf("%d", *o.Number)
	case o.Signed != nil:
		return o.Signed.String()
	default:
		return "(" + o.Sub.String() + ")"
	}
}

func (s *SignedNumber) String() string {
	return string(s.Sign) + s.Operand.String()
}

func (o *Operation) String() string {
	return fmt.Sprintf("%c %s", o.Operator, o.Operand)
}

func (p *Program) String() string {
	out := []string{p.First.String()}
	for _, op := range p.Rest {
		out = append(out, op.String())
	}
	return strings.Join(out, " ")
}
