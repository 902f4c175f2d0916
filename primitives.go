package peg

import (
	"strconv"
	"strings"

	"github.com/parsekit/peg/input"
)

// token wraps a matcher with the between-token policy: skip leading
// whitespace, and on mismatch record the failure position and restore
// the cursor to where the token started.
func token[A any](match func(cur *input.Cursor) (A, bool)) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		start := cur.Pos()
		cur.Skip()
		a, ok := match(cur)
		if !ok {
			cur.MarkFailure()
			cur.Restore(start)
		}
		return a, ok
	}
}

// Eps matches the empty string.
func Eps() Parser[struct{}] {
	return func(cur *input.Cursor) (struct{}, bool) {
		return struct{}{}, true
	}
}

// Attr consumes nothing and synthesizes v. Useful to inject a default
// attribute into an alternative.
func Attr[A any](v A) Parser[A] {
	return func(cur *input.Cursor) (A, bool) {
		return v, true
	}
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune] {
	return token(func(cur *input.Cursor) (rune, bool) {
		if cur.EOF() {
			return 0, false
		}
		return cur.Next(), true
	})
}

// Rune matches r exactly.
func Rune(r rune) Parser[rune] {
	return token(func(cur *input.Cursor) (rune, bool) {
		if cur.Peek() != r {
			return 0, false
		}
		return cur.Next(), true
	})
}

// RuneIn matches any rune in set.
func RuneIn(set string) Parser[rune] {
	return token(func(cur *input.Cursor) (rune, bool) {
		rn := cur.Peek()
		if rn == input.EOF || !strings.ContainsRune(set, rn) {
			return 0, false
		}
		return cur.Next(), true
	})
}

// RuneRange matches any rune in [lo, hi].
func RuneRange(lo, hi rune) Parser[rune] {
	return token(func(cur *input.Cursor) (rune, bool) {
		rn := cur.Peek()
		if rn < lo || rn > hi {
			return 0, false
		}
		return cur.Next(), true
	})
}

// RuneWhen matches any rune for which pred returns true.
func RuneWhen(pred func(rune) bool) Parser[rune] {
	return token(func(cur *input.Cursor) (rune, bool) {
		rn := cur.Peek()
		if rn == input.EOF || !pred(rn) {
			return 0, false
		}
		return cur.Next(), true
	})
}

// Lit matches s exactly.
func Lit(s string) Parser[string] {
	return token(func(cur *input.Cursor) (string, bool) {
		for _, want := range s {
			if cur.Peek() != want {
				return "", false
			}
			cur.Next()
		}
		return s, true
	})
}

// NoCase matches s case-insensitively, folding ASCII letters only, so
// a keyword never matches exotic case-equivalent runes. The attribute
// is the input spelling, not s.
func NoCase(s string) Parser[string] {
	return token(func(cur *input.Cursor) (string, bool) {
		var matched strings.Builder
		for _, want := range s {
			rn := cur.Peek()
			if asciiLower(rn) != asciiLower(want) {
				return "", false
			}
			matched.WriteRune(cur.Next())
		}
		return matched.String(), true
	})
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Uint matches an unsigned decimal integer literal.
func Uint() Parser[uint] {
	return token(func(cur *input.Cursor) (uint, bool) {
		digits := digitRun(cur)
		if digits == "" {
			return 0, false
		}
		n, err := strconv.ParseUint(digits, 10, strconv.IntSize)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	})
}

// Int matches a decimal integer literal with an optional sign.
func Int() Parser[int] {
	return token(func(cur *input.Cursor) (int, bool) {
		var text strings.Builder
		if rn := cur.Peek(); rn == '-' || rn == '+' {
			text.WriteRune(cur.Next())
		}
		digits := digitRun(cur)
		if digits == "" {
			return 0, false
		}
		text.WriteString(digits)
		n, err := strconv.Atoi(text.String())
		if err != nil {
			return 0, false
		}
		return n, true
	})
}

// FloatLexeme matches a strict floating point literal and returns its
// text. Strict means a fractional part or an exponent must be present,
// so in an alternative ordered float-then-int a plain integer literal
// is left for the integer branch.
func FloatLexeme() Parser[string] {
	return token(floatLexeme)
}

// Float is FloatLexeme converted to float64.
func Float() Parser[float64] {
	return token(func(cur *input.Cursor) (float64, bool) {
		text, ok := floatLexeme(cur)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	})
}

func floatLexeme(cur *input.Cursor) (string, bool) {
	var text strings.Builder
	if rn := cur.Peek(); rn == '-' || rn == '+' {
		text.WriteRune(cur.Next())
	}
	intDigits := digitRun(cur)
	text.WriteString(intDigits)
	fracDigits := ""
	dotted := false
	if cur.Peek() == '.' {
		dotted = true
		text.WriteRune(cur.Next())
		fracDigits = digitRun(cur)
		text.WriteString(fracDigits)
	}
	if intDigits == "" && fracDigits == "" {
		return "", false
	}
	hasExponent := false
	if rn := cur.Peek(); rn == 'e' || rn == 'E' {
		mark := cur.Pos()
		var exp strings.Builder
		exp.WriteRune(cur.Next())
		if rn := cur.Peek(); rn == '-' || rn == '+' {
			exp.WriteRune(cur.Next())
		}
		if digits := digitRun(cur); digits != "" {
			exp.WriteString(digits)
			text.WriteString(exp.String())
			hasExponent = true
		} else {
			cur.Restore(mark)
		}
	}
	if !dotted && !hasExponent {
		return "", false
	}
	return text.String(), true
}

func digitRun(cur *input.Cursor) string {
	var out strings.Builder
	for {
		rn := cur.Peek()
		if rn < '0' || rn > '9' {
			return out.String()
		}
		out.WriteRune(cur.Next())
	}
}

// Ident matches an identifier: an ASCII letter followed by ASCII
// letters or digits, with no interior skipping.
func Ident() Parser[string] {
	return token(func(cur *input.Cursor) (string, bool) {
		if !asciiLetter(cur.Peek()) {
			return "", false
		}
		var out strings.Builder
		out.WriteRune(cur.Next())
		for {
			rn := cur.Peek()
			if !asciiLetter(rn) && !asciiDigit(rn) {
				return out.String(), true
			}
			out.WriteRune(cur.Next())
		}
	})
}

func asciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func asciiDigit(r rune) bool { return r >= '0' && r <= '9' }
