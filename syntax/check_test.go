package syntax

import (
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAmelia(t *testing.T) {
	report := Check(Amelia(), DefaultLibrary())

	assert.Equal(t, AmeliaID, report.Table)
	assert.Empty(t, report.Failed())

	var includes, keywords int
	for _, res := range report.Results {
		switch res.Kind {
		case "include":
			includes++
		case "keyword":
			keywords++
			assert.Equal(t, 12, res.Index)
		}
	}
	assert.Equal(t, 12, includes)
	assert.Equal(t, len(AmeliaKeywords()), keywords)
}

func TestCheckReportsFailures(t *testing.T) {
	table := Table{
		ID: "xtext.broken",
		Patterns: []Pattern{
			Include("orion.lib#string_doubleQuote"),
			Include("orion.lib#missing"),
			Inline("keyword.loose", `(?:if|do)`),
			Inline("keyword.other", `\b(?:go|to)\b`),
		},
	}

	failed := Check(table, DefaultLibrary()).Failed()
	require.Len(t, failed, 3)

	assert.Equal(t, 1, failed[0].Index)
	assert.Equal(t, "orion.lib#missing", failed[0].Subject)
	assert.True(t, errors.Is(failed[0].Err, ErrUnknownFragment))

	for _, res := range failed[1:] {
		assert.Equal(t, 2, res.Index)
		assert.Equal(t, "keyword", res.Kind)
		assert.True(t, errors.Is(res.Err, ErrKeywordBoundary))
	}
	assert.Equal(t, "if", failed[1].Subject)
	assert.Equal(t, "do", failed[2].Subject)
}

func TestCheckKeyword(t *testing.T) {
	good := regexp.MustCompile(MustKeywordExpression("if", "val"))
	assert.NoError(t, checkKeyword(good, "if"))
	assert.NoError(t, checkKeyword(good, "val"))

	loose := regexp.MustCompile(`(?:if|val)`)
	err := checkKeyword(loose, "if")
	assert.True(t, errors.Is(err, ErrKeywordBoundary))
	assert.Contains(t, err.Error(), `"ifError"`)

	err = checkKeyword(good, "while")
	assert.True(t, errors.Is(err, ErrKeywordBoundary))
}

func TestCheckCapturingAlternation(t *testing.T) {
	table := Table{ID: "xtext.custom", Patterns: []Pattern{
		Inline("keyword.custom", `\b(if|else)\b`),
		Inline("keyword.loose", `(go|to)`),
	}}

	report := Check(table, DefaultLibrary())
	require.Len(t, report.Results, 4)
	assert.Equal(t, []string{"if", "else", "go", "to"}, []string{
		report.Results[0].Subject, report.Results[1].Subject,
		report.Results[2].Subject, report.Results[3].Subject,
	})
	assert.True(t, report.Results[0].Passed())
	assert.True(t, report.Results[1].Passed())
	assert.True(t, errors.Is(report.Results[2].Err, ErrKeywordBoundary))
}

func TestCheckReportsUnanalysableKeywordPattern(t *testing.T) {
	table := Table{ID: "xtext.custom", Patterns: []Pattern{
		Inline("keyword.custom", `\b[a-z]+ing\b`),
		Inline("constant.numeric", `\d+`),
	}}

	failed := Check(table, DefaultLibrary()).Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 0, failed[0].Index)
	assert.Equal(t, `\b[a-z]+ing\b`, failed[0].Subject)
	assert.True(t, errors.Is(failed[0].Err, ErrNotKeywordList))
}
