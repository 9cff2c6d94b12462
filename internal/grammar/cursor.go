package grammar

import (
	"strings"

	"braces.dev/errtrace"
)

// Cursor is a position in a borrowed string that advances on successful matches.
// Unlike [Span] it is consumed by use.
type Cursor struct {
	rest string
}

// NewCursor returns a cursor at the start of s.
func NewCursor(s string) *Cursor { return &Cursor{rest: s} }

// SplitOff returns the text before the first occurrence of pat and moves the cursor
// just past pat. The cursor is left untouched when pat is absent.
func (c *Cursor) SplitOff(pat string) (Span, error) {
	i := strings.Index(c.rest, pat)
	if i < 0 {
		return Span{}, errtrace.Wrap(Expect(""))
	}
	head := c.rest[:i]
	c.rest = c.rest[i+len(pat):]
	return Span{head}, nil
}

// Rest returns the text not consumed yet.
func (c *Cursor) Rest() Span { return Span{c.rest} }
