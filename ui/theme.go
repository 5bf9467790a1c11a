package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// A Theme is a map of string names to styles for the chrome around the text,
// such as the status bar. Text itself is styled by a buffer.Colorscheme.
// Missing keys fall back to DefaultTheme.
type Theme map[string]tcell.Style

func (theme *Theme) GetOrDefault(key string) tcell.Style {
	if theme != nil {
		if val, ok := (*theme)[key]; ok {
			return val
		}
	}

	if val, ok := DefaultTheme[key]; ok {
		return val
	}
	panic(fmt.Sprintf("key \"%v\" not present in default theme", key))
}

// DefaultTheme uses only the first 16 colors present in most colored terminals.
var DefaultTheme = Theme{
	"StatusBar":        tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"StatusBarMessage": tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorSilver),
}
