package nestedtext

// lineCursor is a forward-only view over the classified lines that skips
// blank and comment lines, so the builder only ever sees structurally
// meaningful lines. Its state is a single index; each Parse call owns its
// own cursor, so concurrent parses never interfere.
type lineCursor struct {
	lines []line
	pos   int
}

func newLineCursor(lines []line) *lineCursor {
	c := &lineCursor{lines: lines}
	c.skip()
	return c
}

func (c *lineCursor) skip() {
	for c.pos < len(c.lines) {
		if k := c.lines[c.pos].kind; k != lineBlank && k != lineComment {
			return
		}
		c.pos++
	}
}

// peek returns the next meaningful line without consuming it, or nil at
// end of input.
func (c *lineCursor) peek() *line {
	if c.pos >= len(c.lines) {
		return nil
	}
	return &c.lines[c.pos]
}

// next consumes and returns the next meaningful line, or nil at end of
// input.
func (c *lineCursor) next() *line {
	l := c.peek()
	if l != nil {
		c.pos++
		c.skip()
	}
	return l
}

// peekDepth returns the depth of the next meaningful line, or -1 at end of
// input.
func (c *lineCursor) peekDepth() int {
	if l := c.peek(); l != nil {
		return l.depth
	}
	return -1
}
