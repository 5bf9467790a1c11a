package buffer

import (
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer is a Buffer backed by a rope. Line start offsets are indexed
// lazily and dropped on every edit.
type RopeBuffer struct {
	rope   *rope.Node
	starts []int // Byte offset of the first byte of each line; nil when stale
}

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return &RopeBuffer{rope: rope.New(contents)}
}

func (b *RopeBuffer) lineStarts() []int {
	if b.starts == nil {
		starts := []int{0}
		b.rope.IndexAllFunc(0, b.rope.Len(), []byte{'\n'}, func(idx int) bool {
			starts = append(starts, idx+1)
			return false // Keep going
		})
		b.starts = starts
	}
	return b.starts
}

// lineBounds returns the byte range of line, delimiter included.
func (b *RopeBuffer) lineBounds(line int) (int, int) {
	starts := b.lineStarts()
	if line < 0 || line >= len(starts) {
		panic("lineBounds: line out of range")
	}
	end := b.rope.Len()
	if line+1 < len(starts) {
		end = starts[line+1]
	}
	return starts[line], end
}

func (b *RopeBuffer) Line(line int) []byte {
	start, end := b.lineBounds(line)
	return b.rope.Slice(start, end)
}

func (b *RopeBuffer) Bytes() []byte {
	return b.rope.Value()
}

func (b *RopeBuffer) Len() int {
	return b.rope.Len()
}

func (b *RopeBuffer) Lines() int {
	return len(b.lineStarts())
}

// trimDelim removes a trailing LF or CRLF.
func trimDelim(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

func (b *RopeBuffer) RunesInLine(line int) int {
	return utf8.RuneCount(trimDelim(b.Line(line)))
}

func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	if line < 0 {
		line = 0
	} else if lines := b.Lines() - 1; line > lines {
		line = lines
	}

	if col < 0 {
		col = 0
	} else if runes := b.RunesInLine(line); col > runes {
		col = runes
	}

	return line, col
}

func (b *RopeBuffer) LineColToPos(line, col int) int {
	if col < 0 {
		panic("LineColToPos: negative column")
	}
	start, _ := b.lineBounds(line)
	data := trimDelim(b.Line(line))

	var i int
	for col > 0 && i < len(data) {
		// Respect Utf-8 codepoint boundaries
		_, size := utf8.DecodeRune(data[i:])
		i += size
		col--
	}
	return start + i
}

func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	if pos < 0 {
		pos = 0
	} else if length := b.rope.Len(); pos > length {
		pos = length
	}

	starts := b.lineStarts()
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > pos }) - 1
	col := utf8.RuneCount(b.rope.Slice(starts[line], pos))
	return line, col
}

func (b *RopeBuffer) Replace(contents []byte) Edit {
	old := b.rope.Value()

	var prefix int
	for prefix < len(old) && prefix < len(contents) && old[prefix] == contents[prefix] {
		prefix++
	}
	for prefix > 0 && prefix < len(old) && !utf8.RuneStart(old[prefix]) {
		prefix-- // Never split a rune
	}

	var suffix int
	for suffix < len(old)-prefix && suffix < len(contents)-prefix &&
		old[len(old)-1-suffix] == contents[len(contents)-1-suffix] {
		suffix++
	}
	for suffix > 0 && !utf8.RuneStart(old[len(old)-suffix]) {
		suffix--
	}

	oldEnd, newEnd := len(old)-suffix, len(contents)-suffix
	if oldEnd == prefix && newEnd == prefix {
		return Edit{}
	}

	firstLine, _ := b.PosToLineCol(prefix)
	oldLines := b.Lines()

	if oldEnd > prefix {
		b.rope.Remove(prefix, oldEnd)
	}
	if newEnd > prefix {
		b.rope.Insert(prefix, append([]byte(nil), contents[prefix:newEnd]...))
	}
	b.starts = nil

	lastLine, _ := b.PosToLineCol(newEnd)
	return Edit{
		Changed:    true,
		FirstLine:  firstLine,
		LastLine:   lastLine,
		LinesDelta: b.Lines() - oldLines,
	}
}
