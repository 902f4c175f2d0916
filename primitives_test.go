package peg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEps(t *testing.T) {
	_, err := ParseString(Eps(), "")
	assert.NoError(t, err)
}

func TestLit(t *testing.T) {
	out, err := ParseString(Lit("select"), "select")
	require.NoError(t, err)
	assert.Equal(t, "select", out)

	_, err = ParseString(Lit("select"), "selec")
	assert.Error(t, err)
}

func TestNoCase(t *testing.T) {
	// The attribute is the input spelling.
	out, err := ParseString(NoCase("select"), "SeLeCt")
	require.NoError(t, err)
	assert.Equal(t, "SeLeCt", out)
}

func TestNoCaseFoldsASCIIOnly(t *testing.T) {
	// The Kelvin sign case-folds to 'k' in Unicode, but keywords are
	// ASCII: it must not match.
	_, err := ParseString(NoCase("like"), "liKe")
	assert.Error(t, err)
}

func TestRuneClasses(t *testing.T) {
	out, err := ParseString(RuneIn("+-"), "-")
	require.NoError(t, err)
	assert.Equal(t, '-', out)

	digit, err := ParseString(RuneRange('0', '9'), "7")
	require.NoError(t, err)
	assert.Equal(t, '7', digit)

	upper, err := ParseString(RuneWhen(unicode.IsUpper), "X")
	require.NoError(t, err)
	assert.Equal(t, 'X', upper)

	_, err = ParseString(RuneWhen(unicode.IsUpper), "x")
	assert.Error(t, err)
}

func TestUint(t *testing.T) {
	out, err := ParseString(Uint(), "123")
	require.NoError(t, err)
	assert.Equal(t, uint(123), out)

	_, err = ParseString(Uint(), "-1")
	assert.Error(t, err)

	// Out-of-range literals are a mismatch, never a silent wraparound.
	_, err = ParseString(Uint(), "99999999999999999999")
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	for text, want := range map[string]int{"42": 42, "-7": -7, "+5": 5} {
		out, err := ParseString(Int(), text)
		require.NoError(t, err, text)
		assert.Equal(t, want, out, text)
	}
	_, err := ParseString(Int(), "-")
	assert.Error(t, err)
}

func TestFloatIsStrict(t *testing.T) {
	for text, want := range map[string]float64{
		"123.12": 123.12,
		".5":     0.5,
		"1.":     1,
		"1e3":    1000,
		"-2.5":   -2.5,
	} {
		out, err := ParseString(Float(), text)
		require.NoError(t, err, text)
		assert.Equal(t, want, out, text)
	}

	// A plain integer is not a float: the fraction or exponent is what
	// distinguishes the branches of a float-then-int alternative.
	_, err := ParseString(Float(), "123")
	assert.Error(t, err)
}

func TestFloatLexemeKeepsText(t *testing.T) {
	out, err := ParseString(FloatLexeme(), "+1.50")
	require.NoError(t, err)
	assert.Equal(t, "+1.50", out)
}

func TestIdent(t *testing.T) {
	out, err := ParseString(Ident(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", out)

	_, err = ParseString(Ident(), "9abc")
	assert.Error(t, err)
}

func TestIdentIsASCIIOnly(t *testing.T) {
	// Non-ASCII letters and digits end the identifier.
	_, err := ParseString(Ident(), "café")
	assert.Error(t, err)

	_, err = ParseString(Ident(), "a١") // Arabic-Indic digit one
	assert.Error(t, err)
}

func TestIdentIsCharacterExact(t *testing.T) {
	// No skipping inside an identifier.
	out, _, err := Run(Ident(), "ab cd")
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestLexemeSuppressesSkipping(t *testing.T) {
	p := Lexeme(Seq2(Rune('a'), Rune('b')))
	_, err := ParseString(p, "ab")
	assert.NoError(t, err)
	_, err = ParseString(p, "a b")
	assert.Error(t, err)
}
