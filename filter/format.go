package filter

import (
	"fmt"
	"strings"
)

// The renderers produce a canonical lower-case spelling of a statement
// that parses back to the same tree.

func (c Connective) String() string {
	switch c {
	case First:
		return "where"
	case And:
		return "and"
	case Or:
		return "or"
	}
	return "?"
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func (v Value) String() string {
	switch {
	case v.Double != nil:
		return v.Double.String()
	case v.Int != nil:
		return fmt.Sprintf("%d", *v.Int)
	case v.Str != nil:
		return quote(*v.Str)
	case v.Regex != nil:
		return quote(v.Regex.Pattern)
	}
	return "?"
}

func (c Condition) String() string {
	var out strings.Builder
	if c.Negated {
		out.WriteString("not ")
	}
	out.WriteString(c.Property)
	if c.Value.Regex != nil {
		out.WriteString(" like ")
	} else {
		out.WriteString(" = ")
	}
	out.WriteString(c.Value.String())
	return out.String()
}

func (f Filter) String() string {
	return f.Connective.String() + " " + f.Condition.String()
}

func (p *PrintCommand) String() string {
	return "print " + strings.Join(p.Properties, "; ")
}

func (s *SetCommand) String() string {
	parts := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		parts = append(parts, a.Property+" = "+a.Value.String())
	}
	return "set " + strings.Join(parts, ", ")
}

func (c Command) String() string {
	if c.Print != nil {
		return c.Print.String()
	}
	return c.Set.String()
}

func (s *Statement) String() string {
	parts := make([]string, 0, len(s.Filters)+1)
	for _, f := range s.Filters {
		parts = append(parts, f.String())
	}
	parts = append(parts, s.Command.String())
	return strings.Join(parts, " ")
}
