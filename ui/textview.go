package ui

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/fivemoreminix/ameliaview/ui/buffer"
)

// TextView is a read-only, syntax highlighted view of a file. It draws line
// numbers, expands hard tabs and keeps a line cursor that the view scrolls to.
type TextView struct {
	Buffer      buffer.Buffer
	Highlighter *buffer.Highlighter
	LineNumbers bool   // Whether to render line numbers (and therefore the column)
	TabSize     int    // Width of a tab stop
	FilePath    string // Path the contents were read from; may be empty

	screen           tcell.Screen // We keep our own reference to the screen for cursor purposes.
	cursor           buffer.Cursor
	scrollx, scrolly int // X and Y offset of view, known as scroll
	language         *buffer.Language
	colorscheme      *buffer.Colorscheme

	baseComponent
}

// NewTextView will initialize the buffer using the given `contents`,
// highlighted with `lang`.
func NewTextView(screen tcell.Screen, filePath string, contents []byte, lang *buffer.Language, colorscheme *buffer.Colorscheme, theme *Theme) *TextView {
	t := &TextView{
		LineNumbers: true,
		TabSize:     4,
		FilePath:    filePath,

		screen:        screen,
		language:      lang,
		colorscheme:   colorscheme,
		baseComponent: baseComponent{theme: theme},
	}
	t.SetContents(contents)
	return t
}

// SetContents replaces the buffer and all highlighting state. The cursor
// goes back to the start.
func (t *TextView) SetContents(contents []byte) {
	t.Buffer = buffer.NewRopeBuffer(contents)
	t.cursor = buffer.NewCursor(t.Buffer)
	t.scrollx, t.scrolly = 0, 0
	t.Highlighter = buffer.NewHighlighter(t.Buffer, t.language, t.colorscheme)
}

// Reload brings the buffer up to date with `contents`, keeping the cursor and
// the highlighting of lines that did not change. Returns whether anything
// changed.
func (t *TextView) Reload(contents []byte) bool {
	edit := t.Buffer.Replace(contents)
	if !edit.Changed {
		return false
	}
	t.Highlighter.Apply(edit)
	t.cursor = t.cursor.Clamp()
	t.ScrollToCursor()
	return true
}

// Language returns the language the view highlights with.
func (t *TextView) Language() *buffer.Language {
	return t.language
}

func (t *TextView) GetCursor() buffer.Cursor {
	return t.cursor
}

func (t *TextView) SetCursor(newCursor buffer.Cursor) {
	t.cursor = newCursor
	t.ScrollToCursor()
	t.updateCursorVisibility()
}

// CursorLine returns the text of the line under the cursor, without its
// delimiter.
func (t *TextView) CursorLine() string {
	line, _ := t.cursor.GetLineCol()
	data := bytes.TrimSuffix(t.Buffer.Line(line), []byte{'\n'})
	return string(bytes.TrimSuffix(data, []byte{'\r'}))
}

// getColumnWidth returns the width of the line numbers column if it is present.
func (t *TextView) getColumnWidth() int {
	var columnWidth int
	if t.LineNumbers {
		// Set columnWidth to max count of line number digits
		columnWidth = max(3, 1+len(strconv.Itoa(t.Buffer.Lines()))) // Column has minimum width of 3
	}
	return columnWidth
}

// visualCol returns the screen column, relative to the start of the text, at
// which rune `col` of `line` is drawn.
func (t *TextView) visualCol(line []byte, col int) int {
	var x int
	for i := 0; i < len(line) && col > 0; col-- {
		r, size := utf8.DecodeRune(line[i:])
		x += t.runeWidth(r, x)
		i += size
	}
	return x
}

func (t *TextView) runeWidth(r rune, x int) int {
	if r == '\t' {
		if t.TabSize < 1 {
			return 1
		}
		return t.TabSize - x%t.TabSize
	}
	return runewidth.RuneWidth(r)
}

// ScrollToCursor scrolls the view if the cursor is out of view.
func (t *TextView) ScrollToCursor() {
	line, col := t.cursor.GetLineCol()

	// Scroll the screen when going to lines out of view
	if line >= t.scrolly+t.height { // If the new line is below view...
		t.scrolly = line - t.height + 1 // Scroll just enough to view that line
	} else if line < t.scrolly { // If the new line is above view
		t.scrolly = line
	}

	textWidth := t.width - t.getColumnWidth()
	x := t.visualCol(t.Buffer.Line(line), col)

	// Scroll the screen horizontally when going to columns out of view
	if x >= t.scrollx+textWidth { // If the new column is right of view
		t.scrollx = x - textWidth + 1 // Scroll just enough to view that column
	} else if x < t.scrollx { // If the new column is left of view
		t.scrollx = x
	}
}

// updateCursorVisibility shows the terminal's cursor at the TextView cursor
// when the TextView is focused.
func (t *TextView) updateCursorVisibility() {
	if t.screen == nil {
		return
	}
	if !t.focused {
		t.screen.HideCursor()
		return
	}
	line, col := t.cursor.GetLineCol()
	x := t.visualCol(t.Buffer.Line(line), col)
	t.screen.ShowCursor(t.x+t.getColumnWidth()+x-t.scrollx, t.y+line-t.scrolly)
}

// Draw renders the TextView component.
func (t *TextView) Draw(s tcell.Screen) {
	columnWidth := t.getColumnWidth()
	bufferLines := t.Buffer.Lines()
	columnStyle := t.colorscheme.GetStyle(buffer.Column)
	defaultStyle := t.colorscheme.GetStyle(buffer.Default)
	textX := t.x + columnWidth

	t.Highlighter.UpdateInvalidatedLines(t.scrolly, t.scrolly+t.height-1)

	for lineY := t.y; lineY < t.y+t.height; lineY++ { // For each line we can draw...
		line := lineY + t.scrolly - t.y // The line number being drawn (starts at zero)

		DrawRect(s, textX, lineY, t.width-columnWidth, 1, ' ', defaultStyle)

		lineNumStr := ""
		if line < bufferLines {
			lineNumStr = strconv.Itoa(line + 1)
			t.drawLine(s, line, textX, lineY, defaultStyle)
		}

		if t.LineNumbers {
			columnStr := fmt.Sprintf("%*s│", columnWidth-1, lineNumStr) // Right align line number
			DrawStr(s, t.x, lineY, textX, columnStr, columnStyle)
		}
	}

	t.updateCursorVisibility()
}

func (t *TextView) drawLine(s tcell.Screen, line, textX, lineY int, defaultStyle tcell.Style) {
	lineBytes := bytes.TrimRight(t.Buffer.Line(line), "\r\n")
	matches := t.Highlighter.GetLineMatches(line)
	maxX := t.x + t.width

	var matchIdx int
	var x int // Visual column of the next rune, before scrolling
	for runeIdx, i := 0, 0; i < len(lineBytes); runeIdx++ {
		r, size := utf8.DecodeRune(lineBytes[i:])
		i += size

		for matchIdx < len(matches) && matches[matchIdx].EndCol < runeIdx {
			matchIdx++ // Passed that highlight data
		}
		style := defaultStyle
		if matchIdx < len(matches) && matches[matchIdx].Col <= runeIdx {
			style = t.colorscheme.GetStyle(matches[matchIdx].Syntax)
		}

		width := t.runeWidth(r, x)
		screenX := textX + x - t.scrollx
		x += width

		if screenX < textX {
			continue // Scrolled out of view to the left
		}
		if screenX+width > maxX {
			break
		}

		if r == '\t' {
			DrawRect(s, screenX, lineY, width, 1, ' ', style)
		} else if width > 0 {
			s.SetContent(screenX, lineY, r, nil, style)
		}
	}
}

// SetFocused sets whether the TextView is focused. When focused, the cursor is
// set visible and its position is updated on every event.
func (t *TextView) SetFocused(v bool) {
	t.focused = v
	t.updateCursorVisibility()
}

// HandleEvent allows the TextView to handle `event` if it chooses, returns
// whether the TextView handled the event.
func (t *TextView) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	line, col := t.cursor.GetLineCol()
	switch ev.Key() {
	case tcell.KeyUp:
		t.SetCursor(t.cursor.Up())
	case tcell.KeyDown:
		t.SetCursor(t.cursor.Down())
	case tcell.KeyLeft:
		t.SetCursor(t.cursor.Left())
	case tcell.KeyRight:
		t.SetCursor(t.cursor.Right())
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			line = 0 // Start of the file
		}
		t.SetCursor(t.cursor.SetLineCol(line, 0))
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			line = math.MaxInt32 // End of the file
		}
		t.SetCursor(t.cursor.SetLineCol(line, math.MaxInt32)) // Max column
	case tcell.KeyPgUp:
		t.SetCursor(t.cursor.SetLineCol(line-t.height, col)) // Go a page up
	case tcell.KeyPgDn:
		t.SetCursor(t.cursor.SetLineCol(line+t.height, col)) // Go a page down
	default:
		return false
	}
	return true
}
