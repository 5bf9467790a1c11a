package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownFormatter = errors.New("unknown formatter")
	ErrUnknownStyle     = errors.New("unknown style")
)

// Options select how a Renderer writes tokens.
type Options struct {
	Formatter string // A chroma formatter name, "terminal256" when empty
	Style     string // A chroma style name, "monokai" when empty
	Jobs      int    // Files rendered at once by RenderFiles; 0 means unlimited
}

// A Renderer writes highlighted source with one lexer, formatter and style.
// It is safe for concurrent use.
type Renderer struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
	jobs      int
	logger    zerolog.Logger
}

// NewRenderer looks up the formatter and style named in opts. Unlike chroma's
// own lookups, unknown names are errors rather than silent fallbacks.
func NewRenderer(lexer chroma.Lexer, opts Options, logger zerolog.Logger) (*Renderer, error) {
	if opts.Formatter == "" {
		opts.Formatter = "terminal256"
	}
	if opts.Style == "" {
		opts.Style = "monokai"
	}

	formatter, ok := formatters.Registry[opts.Formatter]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormatter, "%q (have %s)", opts.Formatter, strings.Join(formatters.Names(), ", "))
	}
	style, ok := styles.Registry[opts.Style]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStyle, "%q (have %s)", opts.Style, strings.Join(styles.Names(), ", "))
	}

	return &Renderer{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatter,
		style:     style,
		jobs:      opts.Jobs,
		logger:    logger,
	}, nil
}

// Tokens returns the coalesced tokens of source.
func (r *Renderer) Tokens(source string) ([]chroma.Token, error) {
	it, err := r.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, errors.Wrap(err, "tokenise")
	}
	return it.Tokens(), nil
}

// Render writes source to w.
func (r *Renderer) Render(w io.Writer, source string) error {
	it, err := r.lexer.Tokenise(nil, source)
	if err != nil {
		return errors.Wrap(err, "tokenise")
	}
	return errors.Wrap(r.formatter.Format(w, r.style, it), "format")
}

// RenderFiles reads and renders every path concurrently, then writes the
// results to w in the order of paths. Nothing is written if any file fails.
func (r *Renderer) RenderFiles(ctx context.Context, w io.Writer, paths []string) error {
	outputs := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if r.jobs > 0 {
		g.SetLimit(r.jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "read %s", path)
			}
			if err := r.Render(&outputs[i], string(source)); err != nil {
				return errors.Wrapf(err, "render %s", path)
			}
			r.logger.Debug().Str("path", path).Int("bytes", outputs[i].Len()).Msg("rendered")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}
