package pgn

// Cursor is a forward-only read position in an in-memory PGN text.
// ParseOneGame advances it exactly past each consumed game.
type Cursor struct {
	text string
	pos  int
}

// NewCursor returns a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Pos returns the byte offset of the cursor.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the unconsumed text.
func (c *Cursor) Remaining() string {
	return c.text[c.pos:]
}

// Done reports whether the whole text has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.text)
}

// advance moves the cursor n bytes forward, clamped to the end of text.
func (c *Cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}
