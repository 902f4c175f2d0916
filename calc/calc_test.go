package calc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/peg"
)

var evalCases = []struct {
	line string
	want int
}{
	{"1", 1},
	{"+4", 4},
	{"8-3-2", 3},
	{"2+3*4", 14},
	{"2*3+4*5", 26},
	{"(1+2)*3", 9},
	{"-(-(5))", 5},
	{"7 - -7", 14},
	{"10/3", 3},
	{"100/10/5", 2},
	{" 1 + 2 ", 3},
}

func TestEval(t *testing.T) {
	for _, c := range evalCases {
		program, err := Parse(c.line)
		require.NoError(t, err, c.line)
		got, err := program.Eval()
		require.NoError(t, err, c.line)
		assert.Equal(t, c.want, got, c.line)
	}
}

func TestTreeShape(t *testing.T) {
	program, err := Parse("8-3-2")
	require.NoError(t, err)
	// Two subtractions folded against the first term, not nested.
	require.Len(t, program.Rest, 2)
	assert.Equal(t, '-', program.Rest[0].Operator)
	assert.Equal(t, '-', program.Rest[1].Operator)
}

func TestTrailingInputFails(t *testing.T) {
	_, err := Parse("1+2 garbage")
	var unconsumed *peg.UnconsumedError
	require.True(t, errors.As(err, &unconsumed))
	assert.Equal(t, "garbage", unconsumed.Rest)
}

func TestDivideByZero(t *testing.T) {
	// The line parses; the error is an evaluation result.
	program, err := Parse("4/0")
	require.NoError(t, err)
	_, err = program.Eval()
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func TestRenderReparse(t *testing.T) {
	// The rendering fully parenthesizes sub-expressions, so it is not
	// the input text, but it evaluates to the same value.
	for _, c := range evalCases {
		program, err := Parse(c.line)
		require.NoError(t, err, c.line)
		again, err := Parse(program.String())
		require.NoError(t, err, program.String())
		got, err := again.Eval()
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.line)
	}
}

func TestParenthesizationIdempotence(t *testing.T) {
	for _, c := range evalCases {
		wrapped, err := Eval("(" + c.line + ")")
		require.NoError(t, err, c.line)
		assert.Equal(t, c.want, wrapped, c.line)
	}
}

func TestDirectAgreesWithTree(t *testing.T) {
	for _, c := range evalCases {
		got, err := Eval(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.want, got, c.line)
	}
}

func TestDirectDivideByZero(t *testing.T) {
	_, err := Eval("4/0")
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func ExampleParse() {
	program, _ := Parse("2+3*4")
	result, _ := program.Eval()
	fmt.Println(result)
	// Output: 14
}
