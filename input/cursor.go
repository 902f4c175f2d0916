// Package input provides the rune cursor parsers consume. A Cursor is a
// view over a single piece of text with O(1) position snapshot and
// restore, which is the only backtracking mechanism in the engine: a
// failed attempt restores the saved Position and the text itself is
// never copied or mutated.
package input

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Peek and Next once the input is exhausted.
const EOF rune = -1

// Position of the cursor within the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Skipper reports whether a rune is skippable between tokens.
type Skipper func(rune) bool

// Cursor is a position over an input string. Taking a snapshot (Pos)
// and restoring it are both O(1).
type Cursor struct {
	src      string
	pos      Position
	skip     Skipper
	noskip   int
	furthest Position
}

// New creates a Cursor over src. skip may be nil to disable
// between-token skipping entirely.
func New(src string, skip Skipper) *Cursor {
	pos := Position{Line: 1, Column: 1}
	return &Cursor{src: src, pos: pos, skip: skip, furthest: pos}
}

// Pos returns a snapshot of the current position.
func (c *Cursor) Pos() Position { return c.pos }

// Restore rewinds the cursor to a previously saved position.
func (c *Cursor) Restore(pos Position) { c.pos = pos }

// EOF reports whether the input is exhausted.
func (c *Cursor) EOF() bool { return c.pos.Offset >= len(c.src) }

// Peek returns the rune at the cursor without consuming it.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return EOF
	}
	rn, _ := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	return rn
}

// Next consumes and returns the rune at the cursor.
func (c *Cursor) Next() rune {
	if c.EOF() {
		return EOF
	}
	rn, n := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	c.pos.Offset += n
	if rn == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return rn
}

// Skip consumes skippable runes. It does nothing while the cursor is
// inside a lexeme or when no skipper is configured.
func (c *Cursor) Skip() {
	if c.skip == nil || c.noskip > 0 {
		return
	}
	for !c.EOF() && c.skip(c.Peek()) {
		c.Next()
	}
}

// EnterLexeme suppresses skipping until the matching LeaveLexeme.
// Calls nest.
func (c *Cursor) EnterLexeme() { c.noskip++ }

// LeaveLexeme re-enables skipping suppressed by EnterLexeme.
func (c *Cursor) LeaveLexeme() { c.noskip-- }

// MarkFailure records the current position if it is the furthest the
// parse has failed at so far. Restore does not rewind it.
func (c *Cursor) MarkFailure() {
	if c.pos.Offset > c.furthest.Offset {
		c.furthest = c.pos
	}
}

// Furthest returns the furthest failure position recorded.
func (c *Cursor) Furthest() Position { return c.furthest }
