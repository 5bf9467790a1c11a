package ui

import (
	"github.com/gdamore/tcell/v2"
)

// A Component is anything drawn inside a bounding rectangle of the screen.
// After constructing a component, call SetPos() and SetSize().
type Component interface {
	// Draw renders the component inside its bounding rectangle.
	Draw(tcell.Screen)
	// Components can be focused, which may affect how they handle events or draw.
	SetFocused(bool)
	SetTheme(*Theme)

	GetPos() (x, y int)
	SetPos(x, y int)

	GetSize() (w, h int)
	SetSize(w, h int)

	// HandleEvent returns whether the Component consumed the event. Components
	// should only handle events while focused.
	HandleEvent(tcell.Event) bool
}

var (
	_ Component = (*TextView)(nil)
	_ Component = (*Label)(nil)
)

// baseComponent can be embedded in a Component's struct to hide a few of the
// boilerplate fields and functions.
type baseComponent struct {
	focused       bool
	x, y          int
	width, height int
	theme         *Theme
}

func (c *baseComponent) SetFocused(v bool) {
	c.focused = v
}

func (c *baseComponent) SetTheme(theme *Theme) {
	c.theme = theme
}

func (c *baseComponent) GetPos() (int, int) {
	return c.x, c.y
}

func (c *baseComponent) SetPos(x, y int) {
	c.x, c.y = x, y
}

func (c *baseComponent) GetSize() (int, int) {
	return c.width, c.height
}

func (c *baseComponent) SetSize(width, height int) {
	c.width, c.height = width, height
}
