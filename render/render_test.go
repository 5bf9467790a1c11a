package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivemoreminix/ameliaview/syntax"
)

func newAmeliaRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	lexer, err := AmeliaLexer()
	require.NoError(t, err)
	r, err := NewRenderer(lexer, opts, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestScopeToken(t *testing.T) {
	tests := []struct {
		scope string
		want  chroma.TokenType
	}{
		{"comment.line.double-slash", chroma.CommentSingle},
		{"comment.block", chroma.CommentMultiline},
		{"comment", chroma.Comment},
		{"string.quoted.double", chroma.LiteralStringDouble},
		{"string.interpolated", chroma.LiteralString},
		{"constant.numeric.hex", chroma.LiteralNumberHex},
		{"constant.numeric.number", chroma.LiteralNumber},
		{"keyword.amelia", chroma.Keyword},
		{"punctuation.section.block.begin", chroma.Punctuation},
		{"entity.name.function", chroma.Text},
		{"", chroma.Text},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScopeToken(tt.scope), tt.scope)
	}
}

func TestAmeliaTokens(t *testing.T) {
	r := newAmeliaRenderer(t, Options{Formatter: "noop"})

	tests := []struct {
		name   string
		source string
		want   []chroma.Token
	}{
		{
			name:   "keywords are whole words",
			source: "if ifx // c",
			want: []chroma.Token{
				{Type: chroma.Keyword, Value: "if"},
				{Type: chroma.Text, Value: " ifx "},
				{Type: chroma.CommentSingle, Value: "// c"},
				{Type: chroma.Text, Value: "\n"},
			},
		},
		{
			name:   "block comment spans lines",
			source: "/* a\nb */ x\n",
			want: []chroma.Token{
				{Type: chroma.CommentMultiline, Value: "/* a\nb */"},
				{Type: chroma.Text, Value: " x\n"},
			},
		},
		{
			name:   "numbers",
			source: "0x1F 42\n",
			want: []chroma.Token{
				{Type: chroma.LiteralNumberHex, Value: "0x1F"},
				{Type: chroma.Text, Value: " "},
				{Type: chroma.LiteralNumber, Value: "42"},
				{Type: chroma.Text, Value: "\n"},
			},
		},
		{
			name:   "strings and punctuation",
			source: `run("a\"b", 'c')` + "\n",
			want: []chroma.Token{
				{Type: chroma.Keyword, Value: "run"},
				{Type: chroma.Punctuation, Value: "("},
				{Type: chroma.LiteralStringDouble, Value: `"a\"b"`},
				{Type: chroma.Text, Value: ", "},
				{Type: chroma.LiteralStringSingle, Value: "'c'"},
				{Type: chroma.Punctuation, Value: ")"},
				{Type: chroma.Text, Value: "\n"},
			},
		},
		{
			name:   "keyword inside comment",
			source: "// while\n",
			want: []chroma.Token{
				{Type: chroma.CommentSingle, Value: "// while"},
				{Type: chroma.Text, Value: "\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Tokens(tt.source)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewLexerRejectsUnknownInclude(t *testing.T) {
	table := syntax.Table{
		ID:       "xtext.broken",
		Patterns: []syntax.Pattern{syntax.Include("orion.lib#nope")},
	}
	_, err := NewLexer(LexerConfig{Name: "Broken"}, table, syntax.DefaultLibrary())
	require.Error(t, err)

	var rerr *syntax.ResolveError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "orion.lib#nope", rerr.ID)
	assert.True(t, errors.Is(err, syntax.ErrUnknownFragment))
}

func TestNewRendererUnknownNames(t *testing.T) {
	lexer, err := AmeliaLexer()
	require.NoError(t, err)

	_, err = NewRenderer(lexer, Options{Formatter: "braille"}, zerolog.Nop())
	assert.True(t, errors.Is(err, ErrUnknownFormatter))

	_, err = NewRenderer(lexer, Options{Style: "plaid"}, zerolog.Nop())
	assert.True(t, errors.Is(err, ErrUnknownStyle))
}

func TestRenderHTML(t *testing.T) {
	r := newAmeliaRenderer(t, Options{Formatter: "html", Style: "github"})

	var out bytes.Buffer
	require.NoError(t, r.Render(&out, "deployment x {\n}\n"))
	assert.Contains(t, out.String(), "deployment</span>")
	assert.Contains(t, out.String(), "<html>")
}

func TestRenderFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var want bytes.Buffer
	for _, src := range []string{"val a = 1\n", "/* b */\n", "if c {\n}\n", "scp d\n"} {
		path := filepath.Join(dir, string(rune('a'+len(paths)))+".amelia")
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		paths = append(paths, path)
		want.WriteString(src)
	}

	r := newAmeliaRenderer(t, Options{Formatter: "noop", Jobs: 2})
	var out bytes.Buffer
	require.NoError(t, r.RenderFiles(context.Background(), &out, paths))
	assert.Equal(t, want.String(), out.String())
}

func TestRenderFilesMissingFileWritesNothing(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.amelia")
	require.NoError(t, os.WriteFile(ok, []byte("do\n"), 0o644))

	r := newAmeliaRenderer(t, Options{Formatter: "noop"})
	var out bytes.Buffer
	err := r.RenderFiles(context.Background(), &out, []string{ok, filepath.Join(dir, "missing.amelia")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.amelia")
	assert.Zero(t, out.Len())
}
