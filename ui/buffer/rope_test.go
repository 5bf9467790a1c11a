package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRopePosToLineCol(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("line0\nline1\n\nline3\n"))
	//line0
	//line1
	//
	//line3
	//

	line, col := buf.PosToLineCol(0)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)

	// The last byte is the delimiter of line3
	line, col = buf.PosToLineCol(buf.Len() - 1)
	assert.Equal(t, 3, line)
	assert.Equal(t, 5, col)

	line, col = buf.PosToLineCol(11) // Delimiter separating line1 and line 2
	assert.Equal(t, 1, line)
	assert.Equal(t, 5, col)

	line, col = buf.PosToLineCol(buf.Len() + 10)
	assert.Equal(t, 4, line)
	assert.Equal(t, 0, col)
}

func TestRopeLineColToPos(t *testing.T) {
	buf := NewRopeBuffer([]byte("ab\n(は)x\n"))

	assert.Equal(t, 0, buf.LineColToPos(0, 0))
	assert.Equal(t, 2, buf.LineColToPos(0, 5)) // Clamped to the delimiter
	assert.Equal(t, 4, buf.LineColToPos(1, 1))
	assert.Equal(t, 7, buf.LineColToPos(1, 2)) // は is three bytes
	assert.Panics(t, func() { buf.LineColToPos(9, 0) })
}

func TestRopeBounds(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("this\nis (は)\n\tsome\ntext\n"))
	//this
	//is (は)
	//	some
	//text
	//

	assert.Equal(t, 5, buf.Lines())
	assert.Equal(t, 6, buf.RunesInLine(1)) // "is" in English and in japanese
	assert.Equal(t, 0, buf.RunesInLine(4))

	line, col := buf.ClampLineCol(15, 5) // Should become last line, first column
	assert.Equal(t, []int{4, 0}, []int{line, col})

	line, col = buf.ClampLineCol(4, -1)
	assert.Equal(t, []int{4, 0}, []int{line, col})

	line, col = buf.ClampLineCol(2, 9) // Third line, pointing at the newline char
	assert.Equal(t, []int{2, 5}, []int{line, col})

	assert.Equal(t, "\tsome\n", string(buf.Line(2)))
	assert.Equal(t, "", string(buf.Line(4)))
}

func TestRopeCRLF(t *testing.T) {
	buf := NewRopeBuffer([]byte("a\r\nbc\r\n"))
	assert.Equal(t, 3, buf.Lines())
	assert.Equal(t, 1, buf.RunesInLine(0))
	assert.Equal(t, "bc\r\n", string(buf.Line(1)))
}

func TestCursorMovement(t *testing.T) {
	buf := NewRopeBuffer([]byte("one\ntwo three\nx"))
	c := NewCursor(buf)

	c = c.Left()
	assert.Equal(t, []int{0, 0}, lineCol(c))

	c = c.SetLineCol(0, 3).Right()
	assert.Equal(t, []int{1, 0}, lineCol(c))

	c = c.SetLineCol(1, 9).Down()
	assert.Equal(t, []int{2, 1}, lineCol(c))

	c = c.Down() // Last line: go to its end
	assert.Equal(t, []int{2, 1}, lineCol(c))

	c = c.SetLineCol(1, 0).Left()
	assert.Equal(t, []int{0, 3}, lineCol(c))

	c = c.Up()
	assert.Equal(t, []int{0, 0}, lineCol(c))
}

func lineCol(c Cursor) []int {
	line, col := c.GetLineCol()
	return []int{line, col}
}

func TestRopeReplace(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     Edit
	}{
		{"same", "a\nb\n", "a\nb\n", Edit{}},
		{"one line", "a\nbc\nd\n", "a\nbxc\nd\n", Edit{Changed: true, FirstLine: 1, LastLine: 1}},
		{"line added", "a\nd\n", "a\nb\nc\nd\n", Edit{Changed: true, FirstLine: 1, LastLine: 3, LinesDelta: 2}},
		{"line removed", "a\nb\nc\n", "a\nc\n", Edit{Changed: true, FirstLine: 1, LastLine: 1, LinesDelta: -1}},
		{"emptied", "abc", "", Edit{Changed: true}},
		{"from empty", "", "x\ny", Edit{Changed: true, LastLine: 1, LinesDelta: 1}},
		{"multibyte", "(は)", "(ほ)", Edit{Changed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewRopeBuffer([]byte(tt.old))
			got := buf.Replace([]byte(tt.new))
			assert.Equal(t, tt.new, string(buf.Bytes()))
			if tt.want.Changed {
				assert.Equal(t, tt.want.FirstLine, got.FirstLine, "FirstLine")
				assert.Equal(t, tt.want.LinesDelta, got.LinesDelta, "LinesDelta")
				assert.True(t, got.Changed)
			} else {
				assert.Equal(t, Edit{}, got)
			}
		})
	}
}
