package calc

import (
	"github.com/parsekit/peg"
)

// Grammar is the entry rule. It matches a complete expression and
// synthesizes its syntax tree.
var Grammar = newGrammar()

func newGrammar() peg.Parser[*Program] {
	expression := peg.NewRule[*Program]("expression")
	term := peg.NewRule[*Program]("term")
	factor := peg.NewRule[*Operand]("factor")

	number := peg.Map(peg.Uint(), func(n uint) *Operand {
		return &Operand{Number: &n}
	})
	group := peg.Map(
		peg.Seq3(peg.Rune('('), expression.Parser(), peg.Rune(')')),
		func(t peg.Triple[rune, *Program, rune]) *Operand {
			return &Operand{Sub: t.B}
		})
	signed := peg.Map(
		peg.Seq2(peg.RuneIn("-+"), factor.Parser()),
		func(p peg.Pair[rune, *Operand]) *Operand {
			return &Operand{Signed: &SignedNumber{Sign: p.A, Operand: p.B}}
		})
	factor.Define(peg.Alt(number, group, signed))

	// ('+' operand) etc: one step of the enclosing left fold.
	opTail := func(operators string, operand peg.Parser[*Operand]) peg.Parser[*Operation] {
		return peg.Map(
			peg.Seq2(peg.RuneIn(operators), operand),
			func(p peg.Pair[rune, *Operand]) *Operation {
				return &Operation{Operator: p.A, Operand: p.B}
			})
	}
	program := func(p peg.Pair[*Operand, []*Operation]) *Program {
		return &Program{First: p.A, Rest: p.B}
	}

	term.Define(peg.Map(
		peg.Seq2(factor.Parser(), peg.Star(opTail("*/", factor.Parser()))),
		program))

	// A term is itself a program, recursing into the operand union.
	termOperand := peg.Map(term.Parser(), func(t *Program) *Operand {
		return &Operand{Sub: t}
	})
	expression.Define(peg.Map(
		peg.Seq2(termOperand, peg.Star(opTail("+-", termOperand))),
		program))

	return expression.Parser()
}

// Parse parses line as a complete arithmetic expression.
func Parse(line string) (*Program, error) {
	return peg.ParseString(Grammar, line)
}
