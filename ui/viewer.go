package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// reloadEvent carries new file contents from the watcher into the event loop.
type reloadEvent struct {
	tcell.EventTime
	contents []byte
}

// A Viewer lays out a TextView above a status bar and runs the event loop
// for both.
type Viewer struct {
	View      *TextView
	Status    *Label
	Clipboard *Clipboard

	screen  tcell.Screen
	theme   *Theme
	logger  zerolog.Logger
	message string // Shown in the status bar until the next key press
}

func NewViewer(screen tcell.Screen, view *TextView, clip *Clipboard, theme *Theme, logger zerolog.Logger) *Viewer {
	v := &Viewer{
		View:      view,
		Status:    NewLabel("", AlignLeft, theme),
		Clipboard: clip,
		screen:    screen,
		theme:     theme,
		logger:    logger,
	}
	view.SetFocused(true)
	v.layout()
	return v
}

// PostReload hands new contents of the viewed file to the event loop. It is
// safe to call from any goroutine.
func (v *Viewer) PostReload(contents []byte) {
	ev := &reloadEvent{contents: contents}
	ev.SetEventNow()
	if err := v.screen.PostEvent(ev); err != nil {
		v.logger.Warn().Err(err).Msg("dropped reload")
	}
}

func (v *Viewer) layout() {
	sizex, sizey := v.screen.Size()
	v.View.SetPos(0, 0)
	v.View.SetSize(sizex, max(sizey-1, 0))
	v.Status.SetPos(0, max(sizey-1, 0))
	v.Status.SetSize(sizex, 1)
	v.View.ScrollToCursor()
}

func (v *Viewer) statusText() string {
	line, col := v.View.GetCursor().GetLineCol()
	name := "[no file]"
	if v.View.FilePath != "" {
		name = filepath.Base(v.View.FilePath)
	}
	lang := "plain"
	if l := v.View.Language(); l != nil {
		lang = l.Name
	}
	text := fmt.Sprintf(" %s | %s | Ln %d, Col %d", name, lang, line+1, col+1)
	if v.message != "" {
		text += " | " + v.message
	}
	return text
}

// Draw renders the whole screen without calling Show().
func (v *Viewer) Draw() {
	v.screen.Clear()
	v.View.Draw(v.screen)
	v.Status.Text = v.statusText()
	v.Status.StyleKey = ""
	if v.message != "" {
		v.Status.StyleKey = "StatusBarMessage"
	}
	v.Status.Draw(v.screen)
}

// HandleEvent processes one event and returns false when the viewer should
// quit.
func (v *Viewer) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		v.layout()
		v.screen.Sync() // Redraw everything
	case *reloadEvent:
		if v.View.Reload(ev.contents) {
			v.message = "reloaded " + ev.When().Format(time.Kitchen)
		}
	case *tcell.EventKey:
		v.message = ""
		switch {
		case ev.Key() == tcell.KeyCtrlQ, ev.Key() == tcell.KeyEscape:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyCtrlC:
			v.copyLine()
		default:
			v.View.HandleEvent(ev)
		}
	}
	return true
}

func (v *Viewer) copyLine() {
	if v.Clipboard == nil {
		return
	}
	if err := v.Clipboard.Write(v.View.CursorLine()); err != nil {
		v.logger.Warn().Err(err).Msg("copy failed")
		v.message = "copy failed"
		return
	}
	v.message = "line copied"
}

// Run draws and handles events until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		v.Draw()
		v.screen.Show()

		ev := v.screen.PollEvent()
		if ev == nil { // Screen finalized
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return nil
		}
		if !v.HandleEvent(ev) {
			return nil
		}
	}
}
