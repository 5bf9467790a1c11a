package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivemoreminix/ameliaview/syntax"
)

func TestScopeSyntax(t *testing.T) {
	tests := map[string]Syntax{
		"comment.line.double-slash":      Comment,
		"comment.block":                  Comment,
		"comment.block.documentation":    DocComment,
		"string.quoted.double":           String,
		"constant.numeric.hex":           Number,
		"keyword.amelia":                 Keyword,
		"punctuation.section.parens.end": Punctuation,
		"entity.name.function":           Default,
		"":                               Default,
		"commentary":                     Default,
	}
	for scope, want := range tests {
		assert.Equal(t, want, ScopeSyntax(scope), scope)
	}
}

func TestRegistryLookups(t *testing.T) {
	r := DefaultRegistry()

	lang, err := r.ForFile("deploy/Web.AMELIA")
	require.NoError(t, err)
	assert.Equal(t, "Amelia", lang.Name)
	assert.Equal(t, []string{"xtext/amelia"}, lang.ContentTypes)
	assert.Len(t, lang.Rules, len(lang.Syntaxes))

	same, err := r.ForContentType("xtext/amelia")
	require.NoError(t, err)
	assert.Same(t, lang, same, "compiled languages are cached")

	_, err = r.ForFile("main.go")
	assert.ErrorIs(t, err, ErrNoLanguage)
	_, err = r.Language("Cobol")
	assert.ErrorIs(t, err, ErrNoLanguage)
}

func TestRegistryReplaceDropsCache(t *testing.T) {
	r := DefaultRegistry()
	before, err := r.Language("Amelia")
	require.NoError(t, err)

	r.Register(Definition{
		Name:      "Amelia",
		Filetypes: []string{".am"},
		Table:     syntax.Table{ID: "x", Patterns: []syntax.Pattern{syntax.Inline("keyword", `\bon\b`)}},
	})
	after, err := r.ForFile("a.am")
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Len(t, after.Rules, 1)
	assert.Equal(t, []string{"Amelia"}, r.Names())
}

func TestRegistryReportsBrokenTables(t *testing.T) {
	r := NewRegistry()
	r.Register(Definition{Name: "broken", Table: syntax.Table{ID: "b", Patterns: []syntax.Pattern{syntax.Include("nowhere#x")}}})

	_, err := r.Language("broken")
	assert.ErrorIs(t, err, syntax.ErrUnknownFragment)
}
