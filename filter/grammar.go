package filter

import (
	"strings"

	"github.com/parsekit/peg"
	"github.com/shopspring/decimal"
)

// Grammar is the entry rule:
//
//	statement <- filters command
//	filters   <- (connective condition)+   first connective must be WHERE,
//	                                       later ones AND or OR
//	condition <- NOT? property (LIKE regex / '=' value)
//	value     <- double / int / strlit
//	command   <- PRINT property (';' property)*
//	           / SET assignment (',' assignment)*
//
// Keywords are case-insensitive. String literals use backslash escapes
// and their closing quote is an expectation point: once the opening
// quote matched, a missing close is a terminal parse error.
var Grammar = newGrammar()

func newGrammar() peg.Parser[*Statement] {
	property := peg.Ident()

	escaped := peg.Map(
		peg.Seq2(peg.Rune('\\'), peg.AnyRune()),
		func(p peg.Pair[rune, rune]) rune { return p.B })
	plain := peg.Diff(peg.AnyRune(), peg.Rune('\''))
	strlit := peg.Lexeme(peg.Map(
		peg.Seq3(
			peg.Rune('\''),
			peg.Star(peg.Alt(escaped, plain)),
			peg.Must(peg.Rune('\''), "closing '"),
		),
		func(t peg.Triple[rune, []rune, rune]) string { return string(t.B) }))

	value := peg.Alt(
		peg.Map(peg.FloatLexeme(), decimalValue),
		peg.Map(peg.Int(), func(n int) Value { return Value{Int: &n} }),
		peg.Map(strlit, func(s string) Value { return Value{Str: &s} }))

	regex := peg.Map(strlit, func(s string) Value {
		return Value{Regex: &Regex{Pattern: s}}
	})

	negation := peg.Map(peg.Opt(peg.NoCase("not")), func(not *string) bool {
		return not != nil
	})
	rhs := peg.Alt(
		peg.Map(peg.Seq2(peg.NoCase("like"), regex),
			func(p peg.Pair[string, Value]) Value { return p.B }),
		peg.Map(peg.Seq2(peg.Rune('='), value),
			func(p peg.Pair[rune, Value]) Value { return p.B }))
	condition := peg.Map(
		peg.Seq3(negation, property, rhs),
		func(t peg.Triple[bool, string, Value]) Condition {
			return Condition{Negated: t.A, Property: t.B, Value: t.C}
		})

	filterWith := func(connective peg.Parser[Connective]) peg.Parser[Filter] {
		return peg.Map(
			peg.Seq2(connective, condition),
			func(p peg.Pair[Connective, Condition]) Filter {
				return Filter{Connective: p.A, Condition: p.B}
			})
	}
	firstFilter := filterWith(peg.Map(peg.NoCase("where"),
		func(string) Connective { return First }))
	laterFilter := filterWith(peg.Alt(
		peg.Map(peg.NoCase("and"), func(string) Connective { return And }),
		peg.Map(peg.NoCase("or"), func(string) Connective { return Or })))

	// The connective is position-dependent: WHERE opens the list and is
	// rejected anywhere else, AND/OR join and are rejected first.
	filters := peg.PlusIndexed(func(i int) peg.Parser[Filter] {
		if i == 0 {
			return firstFilter
		}
		return laterFilter
	})

	printCmd := peg.Map(
		peg.Seq2(peg.NoCase("print"), peg.SepBy(property, peg.Rune(';'))),
		func(p peg.Pair[string, []string]) Command {
			return Command{Print: &PrintCommand{Properties: p.B}}
		})
	assignment := peg.Map(
		peg.Seq3(property, peg.Rune('='), value),
		func(t peg.Triple[string, rune, Value]) Assignment {
			return Assignment{Property: t.A, Value: t.C}
		})
	setCmd := peg.Map(
		peg.Seq2(peg.NoCase("set"), peg.SepBy(assignment, peg.Rune(','))),
		func(p peg.Pair[string, []Assignment]) Command {
			return Command{Set: &SetCommand{Assignments: p.B}}
		})
	command := peg.Alt(printCmd, setCmd)

	return peg.Map(
		peg.Seq2(filters, command),
		func(p peg.Pair[[]Filter, Command]) *Statement {
			return &Statement{Filters: p.A, Command: p.B}
		})
}

func decimalValue(text string) Value {
	d, err := decimal.NewFromString(strings.TrimSuffix(text, "."))
	if err != nil {
		peg.Fail(err)
	}
	return Value{Double: &d}
}

// Parse parses line as a complete statement.
func Parse(line string) (*Statement, error) {
	return peg.ParseString(Grammar, line)
}
