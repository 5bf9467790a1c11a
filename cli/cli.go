// Package cli implements the ameliaview command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fivemoreminix/ameliaview/syntax"
)

// CLI is the top-level command-line interface for ameliaview.
type CLI struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Table string `help:"Load the pattern table from a YAML or JSON grammar file instead of the built-in Amelia table." type:"existingfile"`

	View    View    `cmd:"" help:"Open a file in the terminal viewer."`
	Cat     Cat     `cmd:"" help:"Print highlighted files."`
	Grammar Grammar `cmd:"" help:"Export the pattern table."`
	Check   Check   `cmd:"" help:"Verify keyword boundaries and fragment includes of the pattern table."`
}

// grammar returns the grammar selected by --table, or the built-in Amelia
// table with the default fragment library.
func (c *CLI) grammar() (syntax.Grammar, error) {
	if c.Table == "" {
		return syntax.Grammar{Table: syntax.Amelia()}, nil
	}
	return syntax.LoadGrammar(c.Table)
}

// Run executes the ameliaview CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	return run(ctx, exit, os.Stdout, os.Stderr, args)
}

func run(ctx context.Context, exit func(code int), stdout, stderr io.Writer, args []string) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Syntax highlighting for the Amelia deployment language."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups([]kong.Group{cli.Log.group()}),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(loadConfig, configPath()),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	done, err := cli.Log.start(stderr, ktx.Selected() != nil && ktx.Selected().Name == "view")
	defer done()
	if err != nil {
		return err
	}

	return ktx.Run(&cli)
}
