package calc

import (
	"github.com/parsekit/peg"
)

// DirectGrammar recognizes the same language as Grammar but builds no
// tree: every rule synthesizes the running integer value directly.
// Division by zero terminates the parse with ErrDivideByZero.
var DirectGrammar = newDirectGrammar()

func newDirectGrammar() peg.Parser[int] {
	expression := peg.NewRule[int]("expression")
	term := peg.NewRule[int]("term")
	factor := peg.NewRule[int]("factor")

	factor.Define(peg.Alt(
		peg.Map(peg.Uint(), func(n uint) int { return int(n) }),
		peg.Map(
			peg.Seq3(peg.Rune('('), expression.Parser(), peg.Rune(')')),
			func(t peg.Triple[rune, int, rune]) int { return t.B }),
		peg.Map(
			peg.Seq2(peg.Rune('-'), factor.Parser()),
			func(p peg.Pair[rune, int]) int { return -p.B }),
		peg.Map(
			peg.Seq2(peg.Rune('+'), factor.Parser()),
			func(p peg.Pair[rune, int]) int { return p.B }),
	))

	fold := func(p peg.Pair[int, []peg.Pair[rune, int]]) int {
		acc := p.A
		for _, op := range p.B {
			switch op.A {
			case '+':
				acc += op.B
			case '-':
				acc -= op.B
			case '*':
				acc *= op.B
			case '/':
				if op.B == 0 {
					peg.Fail(ErrDivideByZero)
				}
				acc /= op.B
			}
		}
		return acc
	}

	term.Define(peg.Map(
		peg.Seq2(factor.Parser(), peg.Star(peg.Seq2(peg.RuneIn("*/"), factor.Parser()))),
		fold))
	expression.Define(peg.Map(
		peg.Seq2(term.Parser(), peg.Star(peg.Seq2(peg.RuneIn("+-"), term.Parser()))),
		fold))

	return expression.Parser()
}

// Eval parses and evaluates line in a single pass, without a tree.
func Eval(line string) (int, error) {
	return peg.ParseString(DirectGrammar, line)
}
