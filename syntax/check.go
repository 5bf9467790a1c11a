package syntax

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrKeywordBoundary is reported when a keyword expression fails to match a
// keyword on its own, or matches it inside a longer identifier.
var ErrKeywordBoundary = errors.New("keyword boundary violated")

// ErrNotKeywordList is reported for a pattern scoped as a keyword whose
// expression is not a plain word alternation, so its keywords cannot be
// checked.
var ErrNotKeywordList = errors.New("keyword pattern is not a word alternation")

// keywordAlternation recognises word alternations such as those built by
// KeywordExpression, with or without the boundary assertions. The group may
// be capturing.
var keywordAlternation = regexp.MustCompile(`^(?:\\b)?\((?:\?:)?([\w|]+)\)(?:\\b)?$`)

// A CheckResult is the outcome of one check on one pattern of a table.
type CheckResult struct {
	Index   int    // Position of the pattern in the table
	Kind    string // "include" or "keyword"
	Subject string // Fragment id or keyword
	Err     error  // Nil when the check passed
}

func (r CheckResult) Passed() bool {
	return r.Err == nil
}

// A Report collects the results of checking a table.
type Report struct {
	Table   string
	Results []CheckResult
}

// Failed returns the results that did not pass.
func (r Report) Failed() []CheckResult {
	var failed []CheckResult
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Check resolves every include of t against lib, and for every keyword
// alternation verifies that each keyword matches as a standalone token but
// never inside a longer identifier. Keyword-scoped patterns that are not
// word alternations fail.
func Check(t Table, lib Library) Report {
	report := Report{Table: t.ID}
	for i, p := range t.Patterns {
		if p.IsInclude() {
			_, err := resolvePattern(p, lib)
			report.Results = append(report.Results, CheckResult{Index: i, Kind: "include", Subject: p.Include, Err: err})
			continue
		}

		m := keywordAlternation.FindStringSubmatch(p.Match)
		if m == nil {
			if p.Name == "keyword" || strings.HasPrefix(p.Name, "keyword.") {
				report.Results = append(report.Results, CheckResult{
					Index: i, Kind: "keyword", Subject: p.Match,
					Err: errors.Wrapf(ErrNotKeywordList, "scope %s", p.Name),
				})
			}
			continue // Not a keyword list
		}
		re, err := compile(p.Match)
		for _, kw := range ParseKeywordList(m[1]) {
			res := CheckResult{Index: i, Kind: "keyword", Subject: kw, Err: err}
			if err == nil {
				res.Err = checkKeyword(re, kw)
			}
			report.Results = append(report.Results, res)
		}
	}
	return report
}

func checkKeyword(re *regexp.Regexp, kw string) error {
	if loc := re.FindStringIndex(kw); loc == nil || loc[0] != 0 || loc[1] != len(kw) {
		return errors.Wrapf(ErrKeywordBoundary, "%q does not match on its own", kw)
	}
	for _, ident := range []string{kw + "Error", "x" + kw, "_" + kw + "_", kw + "1"} {
		if re.MatchString(ident) {
			return errors.Wrapf(ErrKeywordBoundary, "%q matches inside %q", kw, ident)
		}
	}
	return nil
}
