// Package filter parses a one-line filter/command DSL:
//
//	WHERE [NOT] <condition> [AND|OR [NOT] <condition> ...] <print|set> ...
//
// with two condition forms (<property> = <value> and <property> LIKE
// <regex>) and two commands (print <property>[; ...] and
// set <property> = <value>[, ...]).
package filter

import (
	"github.com/shopspring/decimal"
)

// Regex is a regex-like pattern literal, as written between quotes.
type Regex struct {
	Pattern string
}

// Value is a typed DSL value: exactly one variant is set. Double is an
// exact decimal, not a binary float, so every literal the grammar
// accepts is represented without rounding.
type Value struct {
	Double *decimal.Decimal
	Int    *int
	Str    *string
	Regex  *Regex
}

// Connective joins a filter to the ones before it. The first filter of
// a statement always carries First; every later one carries And or Or.
type Connective int

const (
	First Connective = iota
	And
	Or
)

// Condition matches a property against a value, optionally negated.
type Condition struct {
	Negated  bool
	Property string
	Value    Value
}

// Filter is one condition with its connective.
type Filter struct {
	Connective Connective
	Condition  Condition
}

// Assignment sets a property to a value.
type Assignment struct {
	Property string
	Value    Value
}

// PrintCommand prints the named properties.
type PrintCommand struct {
	Properties []string
}

// SetCommand applies the assignments.
type SetCommand struct {
	Assignments []Assignment
}

// Command is a tagged union: exactly one field is set.
type Command struct {
	Print *PrintCommand
	Set   *SetCommand
}

// Statement is a full parsed line: at least one filter, then a command.
type Statement struct {
	Filters []Filter
	Command Command
}
