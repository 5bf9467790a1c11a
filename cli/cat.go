package cli

import (
	"context"
	"io"

	"github.com/alecthomas/chroma/v2"

	"github.com/fivemoreminix/ameliaview/internal/log"
	"github.com/fivemoreminix/ameliaview/render"
)

// Cat prints files highlighted through chroma.
type Cat struct {
	Files     []string `arg:"" help:"Files to print, in order." type:"existingfile"`
	Formatter string   `default:"terminal256" help:"Chroma formatter (terminal256, terminal16m, html, noop, ...)." short:"f"`
	Style     string   `default:"monokai" help:"Chroma style." short:"s"`
	Jobs      int      `default:"0" help:"Files rendered at once; 0 means no limit." short:"j"`
}

// Run executes the cat command.
func (c *Cat) Run(ctx context.Context, cli *CLI, out io.Writer) error {
	var lexer chroma.Lexer
	if cli.Table == "" {
		l, err := render.AmeliaLexer()
		if err != nil {
			return err
		}
		lexer = l
	} else {
		g, err := cli.grammar()
		if err != nil {
			return err
		}
		l, err := render.NewLexer(render.LexerConfig{Name: g.ID}, g.Table, g.Library())
		if err != nil {
			return err
		}
		lexer = l
	}

	r, err := render.NewRenderer(lexer, render.Options{
		Formatter: c.Formatter,
		Style:     c.Style,
		Jobs:      c.Jobs,
	}, log.WithComponent("render"))
	if err != nil {
		return err
	}
	return r.RenderFiles(ctx, out, c.Files)
}
