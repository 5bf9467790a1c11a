package syntax

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// KeywordSeparator delimits words in a hand-maintained keyword list.
const KeywordSeparator = "|"

var wordRegexp = regexp.MustCompile(`^\w+$`)

// ParseKeywordList splits a list such as "if|else|while" into its words.
// Surrounding whitespace of each word is dropped; nothing else is checked.
func ParseKeywordList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	words := strings.Split(list, KeywordSeparator)
	for i := range words {
		words[i] = strings.TrimSpace(words[i])
	}
	return words
}

// KeywordExpression builds a case-sensitive alternation of `words` anchored
// with word boundaries on both sides, so that a keyword is only matched as a
// whole token and never inside a longer identifier ("if" but not "ifError").
// The order of `words` is kept.
func KeywordExpression(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyKeywords
	}

	seen := make(map[string]struct{}, len(words))
	for i, w := range words {
		if !wordRegexp.MatchString(w) {
			return "", errors.Wrapf(ErrInvalidKeyword, "word %d: %q", i, w)
		}
		if _, ok := seen[w]; ok {
			return "", errors.Wrapf(ErrDuplicateKeyword, "%q", w)
		}
		seen[w] = struct{}{}
	}

	return `\b(?:` + strings.Join(words, KeywordSeparator) + `)\b`, nil
}

// MustKeywordExpression is like KeywordExpression but panics on a malformed
// list. It is meant for lists that are compiled into the program.
func MustKeywordExpression(words ...string) string {
	expr, err := KeywordExpression(words)
	if err != nil {
		panic("syntax: " + err.Error())
	}
	return expr
}
