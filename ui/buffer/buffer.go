package buffer

// A Buffer is a wrapper around any buffer data structure like ropes or a gap
// buffer that can be used for text viewing and editing. All API function
// parameters are line and column indexes. Lines and columns start at zero,
// columns count runes, and all "end" ranges are inclusive unless stated.
//
// Any bounds out of range are panics! If you are unsure your position or range
// may be out of bounds, use ClampLineCol() or compare with Lines() or RunesInLine().
type Buffer interface {
	// Line returns a slice of the data at the given line, including the ending
	// line-delimiter. Data returned may or may not be a copy: do not write to it.
	Line(line int) []byte

	// Bytes returns all of the bytes in the buffer. Very likely a copy.
	Bytes() []byte

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer. An empty buffer has one
	// line, and so does a buffer without any '\n'.
	Lines() int

	// RunesInLine returns the number of runes in the given line, excluding the
	// line delimiter.
	RunesInLine(line int) int

	// ClampLineCol clamps line to the lines of the buffer, then col to the
	// range between zero and the line delimiter.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the byte offset of the rune at line, col. A col past
	// the end of the line yields the offset of the line delimiter.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset into a line and column. The offset is
	// clamped to the buffer.
	PosToLineCol(pos int) (int, int)

	// Replace makes contents the new contents of the buffer by editing only
	// the span that differs from the current contents.
	Replace(contents []byte) Edit
}

// An Edit describes which lines a Replace touched.
type Edit struct {
	Changed    bool
	FirstLine  int // First changed line
	LastLine   int // Last changed line, counted in the edited buffer
	LinesDelta int // Lines after the edit minus lines before it
}
