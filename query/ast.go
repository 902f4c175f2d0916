// Package query parses SELECT ... FROM ... WHERE ... statements with
// typed conditions.
package query

import (
	"fmt"
	"strings"
)

// Op is a comparison operator in a WHERE condition.
type Op int

const (
	OpEq Op = iota
	OpNeq
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	}
	return "?"
}

// Value is a typed condition value: exactly one variant is set.
type Value struct {
	Int  *int
	Str  *string
	Null bool
}

func (v Value) String() string {
	switch {
	case v.Int != nil:
		return fmt.Sprintf("%d", *v.Int)
	case v.Str != nil:
		return *v.Str
	case v.Null:
		return "NULL"
	}
	return "?"
}

// Condition is one field comparison in a WHERE clause.
type Condition struct {
	Field string
	Op    Op
	Value Value
}

func (c Condition) String() string {
	return fmt.Sprintf("[ Fld{%s} Op{%s} Value{%s} ]", c.Field, c.Op, c.Value)
}

// Select is a parsed statement. Where is nil iff the statement had no
// WHERE clause; when present it holds at least one condition.
type Select struct {
	Columns []string
	Table   string
	Where   []Condition
}

func (s *Select) String() string {
	var out strings.Builder
	out.WriteString("\nSELECT: ")
	for _, col := range s.Columns {
		out.WriteString(col)
		out.WriteString(" ")
	}
	out.WriteString("\nFROM: ")
	out.WriteString(s.Table)
	if s.Where != nil {
		out.WriteString("\nWHERE: ")
		for _, cond := range s.Where {
			out.WriteString(cond.String())
		}
	}
	out.WriteString("\n")
	return out.String()
}
