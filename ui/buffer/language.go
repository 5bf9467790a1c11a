package buffer

import (
	"strings"

	"github.com/fivemoreminix/ameliaview/syntax"
)

type Syntax uint8

const (
	Default Syntax = iota
	Column         // Not necessarily a Syntax; useful for Colorscheming editor column
	Keyword
	String
	Special
	Type
	Number
	Builtin
	Comment
	DocComment
	Punctuation
)

// scopeSyntaxes maps scope name prefixes to a Syntax. The longest matching
// dotted prefix of a scope wins.
var scopeSyntaxes = map[string]Syntax{
	"comment":                     Comment,
	"comment.block.documentation": DocComment,
	"string":                      String,
	"constant.numeric":            Number,
	"constant.language":           Special,
	"keyword":                     Keyword,
	"storage.type":                Type,
	"support.function":            Builtin,
	"punctuation":                 Punctuation,
}

// ScopeSyntax returns the Syntax used to style tokens of the given scope,
// for example Comment for "comment.line.double-slash".
func ScopeSyntax(scope string) Syntax {
	for prefix := scope; prefix != ""; {
		if s, ok := scopeSyntaxes[prefix]; ok {
			return s
		}
		i := strings.LastIndexByte(prefix, '.')
		if i < 0 {
			break
		}
		prefix = prefix[:i]
	}
	return Default
}

// A Language is a compiled pattern table along with the file types and
// content types it applies to.
type Language struct {
	Name         string
	Filetypes    []string // .amelia, .go, etc.
	ContentTypes []string
	Rules        []syntax.Rule
	Syntaxes     []Syntax // Syntax of each rule, by index
}

// NewLanguage resolves table against lib.
func NewLanguage(name string, filetypes []string, table syntax.Table, lib syntax.Library) (*Language, error) {
	rules, err := syntax.Resolve(table, lib)
	if err != nil {
		return nil, err
	}

	syntaxes := make([]Syntax, len(rules))
	for i := range rules {
		syntaxes[i] = ScopeSyntax(rules[i].Scope)
	}

	return &Language{
		Name:         name,
		Filetypes:    append([]string(nil), filetypes...),
		ContentTypes: append([]string(nil), table.ContentTypes...),
		Rules:        rules,
		Syntaxes:     syntaxes,
	}, nil
}
