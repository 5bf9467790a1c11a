package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/fivemoreminix/ameliaview/internal/log"
	"github.com/fivemoreminix/ameliaview/ui"
	"github.com/fivemoreminix/ameliaview/ui/buffer"
)

// View opens one file in the interactive viewer.
type View struct {
	File          string `arg:"" help:"File to view." type:"existingfile"`
	Watch         bool   `help:"Reload the file when it changes on disk." short:"w"`
	TabSize       int    `default:"4" help:"Width of a tab stop."`
	NoLineNumbers bool   `help:"Hide the line number column."`
}

// Validate implements kong's validation hook.
func (v *View) Validate() error {
	if v.TabSize < 1 {
		return errors.Errorf("tab size must be at least 1, got %d", v.TabSize)
	}
	return nil
}

// language picks the language for path. Files without a registered
// extension are highlighted as Amelia.
func (v *View) language(cli *CLI, path string) (*buffer.Language, error) {
	logger := log.WithComponent("view")

	if cli.Table != "" {
		g, err := cli.grammar()
		if err != nil {
			return nil, err
		}
		return buffer.NewLanguage(g.ID, nil, g.Table, g.Library())
	}

	registry := buffer.DefaultRegistry()
	lang, err := registry.ForFile(path)
	if errors.Is(err, buffer.ErrNoLanguage) {
		logger.Info().Str("path", path).Msg("no language for extension, using Amelia")
		return registry.Language("Amelia")
	}
	return lang, err
}

// Run executes the view command.
func (v *View) Run(ctx context.Context, cli *CLI) error {
	logger := log.WithComponent("view")

	contents, err := os.ReadFile(v.File)
	if err != nil {
		return err
	}
	lang, err := v.language(cli, v.File)
	if err != nil {
		return err
	}

	clip, err := ui.NewClipboard()
	if err != nil {
		logger.Info().Err(err).Msg("system clipboard unavailable, using internal clipboard")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	view := ui.NewTextView(screen, v.File, contents, lang, &buffer.DefaultColorscheme, &ui.DefaultTheme)
	view.TabSize = v.TabSize
	view.LineNumbers = !v.NoLineNumbers
	viewer := ui.NewViewer(screen, view, clip, &ui.DefaultTheme, logger)

	logger.Debug().
		Str("path", filepath.Clean(v.File)).
		Str("language", lang.Name).
		Int("lines", view.Buffer.Lines()).
		Bool("watch", v.Watch).
		Msg("viewer started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if v.Watch {
		g.Go(func() error {
			return ui.WatchFile(ctx, v.File, logger, viewer.PostReload)
		})
	}
	g.Go(func() error {
		defer cancel() // Quitting the viewer stops the watcher
		return viewer.Run(ctx)
	})
	return g.Wait()
}
