package syntax

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSONHostShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, Amelia()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "xtext.amelia", doc["id"])
	assert.Equal(t, []any{"xtext/amelia"}, doc["contentTypes"])

	patterns := doc["patterns"].([]any)
	require.Len(t, patterns, 13)
	assert.Equal(t, map[string]any{"include": "orion.c-like#comment_singleLine"}, patterns[0])

	kw := patterns[12].(map[string]any)
	assert.Equal(t, "keyword.amelia", kw["name"])
	assert.NotContains(t, kw, "include")

	assert.Contains(t, buf.String(), `\\b(?:as|case|catch|`)
}

func TestDecodeGrammarYAML(t *testing.T) {
	src := `
id: xtext.mini
contentTypes: [xtext/mini]
patterns:
  - include: orion.lib#number_hex
  - include: mini#arrow
  - name: keyword.mini
    match: \b(?:on|do)\b
fragments:
  mini#arrow:
    name: keyword.operator
    match: "->"
`
	g, err := DecodeGrammar(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "xtext.mini", g.ID)
	require.Len(t, g.Patterns, 3)
	assert.Equal(t, Inline("keyword.mini", `\b(?:on|do)\b`), g.Patterns[2])

	rules, err := Resolve(g.Table, g.Library())
	require.NoError(t, err)
	assert.Equal(t, "keyword.operator", rules[1].Scope)
}

func TestDecodeGrammarJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, Amelia()))

	g, err := DecodeGrammar(&buf)
	require.NoError(t, err)
	assert.Equal(t, Amelia(), g.Table)
	assert.Empty(t, g.Fragments)
}

func TestDecodeGrammarRejectsBadFragment(t *testing.T) {
	src := `
id: t
patterns:
  - include: x#y
fragments:
  x#y:
    name: c
    match: a
    begin: b
`
	_, err := DecodeGrammar(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestLoadGrammar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amelia.yaml")

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, Amelia()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	g, err := LoadGrammar(path)
	require.NoError(t, err)
	assert.Equal(t, Amelia(), g.Table)

	_, err = LoadGrammar(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
