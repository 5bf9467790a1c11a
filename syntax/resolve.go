package syntax

import (
	"regexp"

	"github.com/pkg/errors"
)

// A Rule is a Pattern with its fragment reference resolved and its
// expressions compiled. Rules keep the order of the table they came from.
type Rule struct {
	Source string // Fragment id; empty for inline patterns
	Scope  string

	// Match finds the rule in a line. For a multi-line rule it is the
	// expression opening the region.
	Match *regexp.Regexp
	// End closes a multi-line region. Nil for single-line rules.
	End *regexp.Regexp
}

func (r *Rule) Multiline() bool {
	return r.End != nil
}

// Resolve looks up every include of the table in lib and compiles the
// resulting expressions. The first failure is returned as a *ResolveError.
func Resolve(t Table, lib Library) ([]Rule, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(t.Patterns))
	for i, p := range t.Patterns {
		rule, err := resolvePattern(p, lib)
		if err != nil {
			id := p.Include
			if id == "" {
				id = p.Name
			}
			return nil, &ResolveError{Index: i, ID: id, Err: err}
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func resolvePattern(p Pattern, lib Library) (Rule, error) {
	if !p.IsInclude() {
		re, err := compile(p.Match)
		if err != nil {
			return Rule{}, err
		}
		return Rule{Scope: p.Name, Match: re}, nil
	}

	f, err := lib.Lookup(p.Include)
	if err != nil {
		return Rule{}, err
	}

	rule := Rule{Source: p.Include, Scope: f.Name}
	if f.Multiline() {
		if f.End == "" {
			return Rule{}, errors.Wrap(ErrInvalidPattern, "multi-line fragment has no end expression")
		}
		if rule.Match, err = compile(f.Begin); err != nil {
			return Rule{}, err
		}
		if rule.End, err = compile(f.End); err != nil {
			return Rule{}, err
		}
		return rule, nil
	}

	if f.Match == "" {
		return Rule{}, errors.Wrap(ErrInvalidPattern, "fragment has no match expression")
	}
	rule.Match, err = compile(f.Match)
	return rule, err
}

func compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPattern, err.Error())
	}
	if re.MatchString("") {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q matches the empty string", expr)
	}
	return re, nil
}
