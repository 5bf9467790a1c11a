package buffer

import "math"

// The cursor lives with the buffer, not the view: it needs the buffer to know
// where lines end and how it can move. The buffer is the city, and the Cursor
// is the car.

// A Cursor is a position in a Buffer. Its functions emulate common cursor
// actions and return the moved Cursor; the receiver is never modified.
type Cursor struct {
	buffer    Buffer
	line, col int
}

func NewCursor(in Buffer) Cursor {
	return Cursor{buffer: in}
}

func (c Cursor) Left() Cursor {
	if c.col == 0 && c.line != 0 { // If we are at the beginning of the current line...
		// Go to the end of the above line
		c.line--
		c.col = c.buffer.RunesInLine(c.line)
	} else if c.col > 0 {
		c.col--
	}
	return c
}

func (c Cursor) Right() Cursor {
	// If we are at the end of the current line, and not at the last line...
	if c.col >= c.buffer.RunesInLine(c.line) && c.line < c.buffer.Lines()-1 {
		c.line, c.col = c.buffer.ClampLineCol(c.line+1, 0) // Go to beginning of line below
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line, c.col+1)
	}
	return c
}

func (c Cursor) Up() Cursor {
	if c.line == 0 {
		c.line, c.col = 0, 0
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line-1, c.col)
	}
	return c
}

func (c Cursor) Down() Cursor {
	if c.line == c.buffer.Lines()-1 { // If the cursor is at the last line...
		c.line, c.col = c.buffer.ClampLineCol(c.line, math.MaxInt32) // Go to end of current line
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line+1, c.col)
	}
	return c
}

func (c Cursor) GetLineCol() (line, col int) {
	return c.line, c.col
}

// SetLineCol moves the Cursor to line, col, clamped to the buffer.
func (c Cursor) SetLineCol(line, col int) Cursor {
	c.line, c.col = c.buffer.ClampLineCol(line, col)
	return c
}

// Clamp brings the Cursor back inside the buffer after the buffer has been
// edited underneath it.
func (c Cursor) Clamp() Cursor {
	return c.SetLineCol(c.line, c.col)
}
