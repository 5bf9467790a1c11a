// Package render turns pattern tables into chroma lexers and writes
// highlighted source through chroma formatters.
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/pkg/errors"

	"github.com/fivemoreminix/ameliaview/syntax"
)

// scopeTokens maps scope name prefixes to chroma token types. As with the
// terminal colorscheme, the longest matching dotted prefix wins.
var scopeTokens = map[string]chroma.TokenType{
	"comment":                     chroma.Comment,
	"comment.line":                chroma.CommentSingle,
	"comment.block":               chroma.CommentMultiline,
	"comment.block.documentation": chroma.LiteralStringDoc,
	"string":                      chroma.LiteralString,
	"string.quoted.double":        chroma.LiteralStringDouble,
	"string.quoted.single":        chroma.LiteralStringSingle,
	"constant.numeric":            chroma.LiteralNumber,
	"constant.numeric.hex":        chroma.LiteralNumberHex,
	"constant.language":           chroma.KeywordConstant,
	"keyword":                     chroma.Keyword,
	"storage.type":                chroma.KeywordType,
	"support.function":            chroma.NameBuiltin,
	"punctuation":                 chroma.Punctuation,
}

// ScopeToken returns the chroma token type for a scope name. Unknown scopes
// are plain Text.
func ScopeToken(scope string) chroma.TokenType {
	for prefix := scope; prefix != ""; {
		if t, ok := scopeTokens[prefix]; ok {
			return t
		}
		i := strings.LastIndexByte(prefix, '.')
		if i < 0 {
			break
		}
		prefix = prefix[:i]
	}
	return chroma.Text
}

// LexerConfig names the generated lexer.
type LexerConfig struct {
	Name      string
	Aliases   []string
	Filenames []string // Globs, for example "*.amelia"
}

// NewLexer builds a chroma lexer that tokenizes the way the table's rules
// are listed: at each position the first rule that matches wins. Begin/end
// fragments push a state that lasts until the end expression matches.
//
// The table is resolved up front so that unknown fragments and broken
// expressions are reported here rather than on the first Tokenise.
func NewLexer(cfg LexerConfig, t syntax.Table, lib syntax.Library) (*chroma.RegexLexer, error) {
	if _, err := syntax.Resolve(t, lib); err != nil {
		return nil, err
	}

	rules := chroma.Rules{}
	var root []chroma.Rule
	for i, p := range t.Patterns {
		if !p.IsInclude() {
			root = append(root, chroma.Rule{Pattern: p.Match, Type: ScopeToken(p.Name)})
			continue
		}

		f, _ := lib.Lookup(p.Include) // Resolved above
		token := ScopeToken(f.Name)
		if !f.Multiline() {
			root = append(root, chroma.Rule{Pattern: f.Match, Type: token})
			continue
		}

		state := fmt.Sprintf("region%d", i)
		root = append(root, chroma.Rule{Pattern: f.Begin, Type: token, Mutator: chroma.Push(state)})
		rules[state] = []chroma.Rule{
			{Pattern: f.End, Type: token, Mutator: chroma.Pop(1)},
			{Pattern: `[\s\S]`, Type: token},
		}
	}

	// Identifiers are consumed whole so that a rule cannot match in the
	// middle of one.
	rules["root"] = append(root,
		chroma.Rule{Pattern: `\s+`, Type: chroma.Text},
		chroma.Rule{Pattern: `\w+`, Type: chroma.Text},
		chroma.Rule{Pattern: `[\s\S]`, Type: chroma.Text},
	)

	mimeTypes := append([]string(nil), t.ContentTypes...)
	lexer, err := chroma.NewLexer(&chroma.Config{
		Name:      cfg.Name,
		Aliases:   cfg.Aliases,
		Filenames: cfg.Filenames,
		MimeTypes: mimeTypes,
		EnsureNL:  true,
	}, func() chroma.Rules { return rules })
	if err != nil {
		return nil, errors.Wrapf(err, "lexer %s", cfg.Name)
	}

	// Compiles the expressions with the lexer's own regexp engine.
	if _, err := lexer.Tokenise(nil, ""); err != nil {
		return nil, errors.Wrapf(syntax.ErrInvalidPattern, "lexer %s: %v", cfg.Name, err)
	}
	return lexer, nil
}

// AmeliaLexer returns a lexer for the built-in Amelia table.
func AmeliaLexer() (*chroma.RegexLexer, error) {
	globs := make([]string, len(syntax.AmeliaExtensions))
	for i, ext := range syntax.AmeliaExtensions {
		globs[i] = "*" + ext
	}
	return NewLexer(LexerConfig{
		Name:      "Amelia",
		Aliases:   []string{"amelia"},
		Filenames: globs,
	}, syntax.Amelia(), syntax.DefaultLibrary())
}
