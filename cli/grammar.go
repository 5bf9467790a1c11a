package cli

import (
	"bytes"
	"io"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/fivemoreminix/ameliaview/internal/log"
	"github.com/fivemoreminix/ameliaview/syntax"
)

// Grammar writes the pattern table in the host engine's shape.
type Grammar struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (json, yaml)." short:"f"`
	Output string `help:"Write to this file, atomically, instead of stdout." short:"o" type:"path"`
}

// Run executes the grammar command.
func (g *Grammar) Run(cli *CLI, out io.Writer) error {
	gr, err := cli.grammar()
	if err != nil {
		return err
	}

	var data bytes.Buffer
	switch g.Format {
	case "yaml":
		err = syntax.EncodeYAML(&data, gr.Table)
	default:
		err = syntax.EncodeJSON(&data, gr.Table)
	}
	if err != nil {
		return err
	}

	if g.Output == "" {
		_, err = data.WriteTo(out)
		return err
	}

	if err := renameio.WriteFile(g.Output, data.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", g.Output)
	}
	logger := log.WithComponent("grammar")
	logger.Info().
		Str("path", g.Output).
		Str("table", gr.ID).
		Str("format", g.Format).
		Msg("grammar written")
	return nil
}
