package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Align defines the text alignment of a label.
type Align uint8

const (
	// AlignLeft is the normal text alignment where text is aligned to the left
	// of its bounding box.
	AlignLeft Align = iota
	// AlignRight causes text to be aligned to the right of its bounding box.
	AlignRight
)

// A Label renders one line of text in its bounding box, which is filled with
// the label's style. Text that does not fit is cut.
type Label struct {
	Text      string
	Alignment Align
	StyleKey  string // Theme key; "StatusBar" when empty

	baseComponent
}

func NewLabel(text string, align Align, theme *Theme) *Label {
	return &Label{
		Text:          text,
		Alignment:     align,
		baseComponent: baseComponent{theme: theme, height: 1},
	}
}

func (l *Label) Draw(s tcell.Screen) {
	key := l.StyleKey
	if key == "" {
		key = "StatusBar"
	}
	style := l.theme.GetOrDefault(key)

	DrawRect(s, l.x, l.y, l.width, l.height, ' ', style)

	x := l.x
	if l.Alignment == AlignRight {
		if w := runewidth.StringWidth(l.Text); w < l.width {
			x = l.x + l.width - w
		}
	}
	DrawStr(s, x, l.y, l.x+l.width, l.Text, style)
}

// HandleEvent never consumes events.
func (l *Label) HandleEvent(tcell.Event) bool {
	return false
}
