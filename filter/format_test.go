package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRendering(t *testing.T) {
	// The example is already canonical and survives untouched.
	line := "where currency like 'GBP|USD' set logging = 1, logfile = 'myfile'"
	stmt, err := Parse(line)
	require.NoError(t, err)
	assert.Equal(t, line, stmt.String())
}

func TestRenderingNormalizes(t *testing.T) {
	stmt, err := Parse("WHERE  NOT a=1   AND b LIKE 'x'  PRINT a;b")
	require.NoError(t, err)
	assert.Equal(t, "where not a = 1 and b like 'x' print a; b", stmt.String())
}

func TestRenderingQuotesEscapes(t *testing.T) {
	stmt, err := Parse(`where a = 'it\'s' print a`)
	require.NoError(t, err)
	assert.Equal(t, `where a = 'it\'s' print a`, stmt.String())
}

func TestRoundTrip(t *testing.T) {
	for _, line := range []string{
		"where currency like 'GBP|USD' set logging = 1, logfile = 'myfile'",
		"where not severity = 0 or rate = 3.14 print ident; errorMessage",
		"where a = 1 and b = 2 or c = 3 print a",
		`where a = 'it\'s' and b = 'a\\b' set c = 'x'`,
	} {
		stmt, err := Parse(line)
		require.NoError(t, err, line)
		again, err := Parse(stmt.String())
		require.NoError(t, err, stmt.String())
		assert.Equal(t, stmt, again, line)
	}
}
