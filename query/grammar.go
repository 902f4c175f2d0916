package query

import (
	"github.com/parsekit/peg"
)

// Grammar is the entry rule:
//
//	columns    <- SELECT ident (',' ident)*
//	table      <- FROM ident
//	conditions <- (WHERE condition (AND condition)*)?
//	condition  <- ident ("==" / "!=") value
//	value      <- strlit / int / NULL
//	statement  <- columns table conditions ';'
//
// Keywords are case-insensitive; identifiers and string literals are
// matched character-exact.
var Grammar = newGrammar()

func newGrammar() peg.Parser[*Select] {
	ident := peg.Ident()

	// 'string' with no escapes: any character but the closing quote.
	strlit := peg.Lexeme(peg.Map(
		peg.Seq3(
			peg.Rune('\''),
			peg.Star(peg.Diff(peg.AnyRune(), peg.Rune('\''))),
			peg.Rune('\''),
		),
		func(t peg.Triple[rune, []rune, rune]) string { return string(t.B) }))

	op := peg.Alt(
		peg.Map(peg.Lit("=="), func(string) Op { return OpEq }),
		peg.Map(peg.Lit("!="), func(string) Op { return OpNeq }))

	value := peg.Alt(
		peg.Map(strlit, func(s string) Value { return Value{Str: &s} }),
		peg.Map(peg.Int(), func(n int) Value { return Value{Int: &n} }),
		peg.Map(peg.NoCase("null"), func(string) Value { return Value{Null: true} }))

	condition := peg.Map(
		peg.Seq3(ident, op, value),
		func(t peg.Triple[string, Op, Value]) Condition {
			return Condition{Field: t.A, Op: t.B, Value: t.C}
		})

	columns := peg.Map(
		peg.Seq2(peg.NoCase("select"), peg.SepBy(ident, peg.Rune(','))),
		func(p peg.Pair[string, []string]) []string { return p.B })

	table := peg.Map(
		peg.Seq2(peg.NoCase("from"), ident),
		func(p peg.Pair[string, string]) string { return p.B })

	conditions := peg.Map(
		peg.Opt(peg.Seq2(peg.NoCase("where"), peg.SepBy(condition, peg.NoCase("and")))),
		func(where *peg.Pair[string, []Condition]) []Condition {
			if where == nil {
				return nil
			}
			return where.B
		})

	return peg.Map(
		peg.Seq3(
			peg.Seq2(columns, table),
			conditions,
			peg.Rune(';'),
		),
		func(t peg.Triple[peg.Pair[[]string, string], []Condition, rune]) *Select {
			return &Select{Columns: t.A.A, Table: t.A.B, Where: t.B}
		})
}

// Parse parses line as a complete SELECT statement.
func Parse(line string) (*Select, error) {
	return peg.ParseString(Grammar, line)
}
