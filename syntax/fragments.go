package syntax

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// FragmentSeparator separates the library name from the fragment name in a
// fragment id ("orion.lib#string_doubleQuote").
const FragmentSeparator = "#"

// A Fragment is a reusable lexical rule shared between languages. A fragment
// either matches within a single line (Match), or spans from a Begin match to
// the next End match, possibly across lines.
type Fragment struct {
	Name  string `json:"name" yaml:"name"`
	Match string `json:"match,omitempty" yaml:"match,omitempty"`
	Begin string `json:"begin,omitempty" yaml:"begin,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

func (f Fragment) Multiline() bool {
	return f.Begin != ""
}

// A Library maps fragment ids to their definitions.
type Library map[string]Fragment

// Lookup returns the fragment registered under id.
func (l Library) Lookup(id string) (Fragment, error) {
	if !strings.Contains(id, FragmentSeparator) {
		return Fragment{}, errors.Wrapf(ErrUnknownFragment, "%q is not of the form library#name", id)
	}
	f, ok := l[id]
	if !ok {
		return Fragment{}, errors.Wrapf(ErrUnknownFragment, "%q", id)
	}
	return f, nil
}

// IDs returns the sorted fragment ids of the library.
func (l Library) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge returns a new Library containing the fragments of l overlaid with
// those of other.
func (l Library) Merge(other Library) Library {
	merged := make(Library, len(l)+len(other))
	for id, f := range l {
		merged[id] = f
	}
	for id, f := range other {
		merged[id] = f
	}
	return merged
}

var orion = Library{
	"orion.c-like#comment_singleLine": {Name: "comment.line.double-slash", Match: `//.*`},
	"orion.c-like#comment_block":      {Name: "comment.block", Begin: `/\*`, End: `\*/`},

	"orion.lib#string_doubleQuote": {Name: "string.quoted.double", Match: `"(?:\\.|[^"\n])*"?`},
	"orion.lib#string_singleQuote": {Name: "string.quoted.single", Match: `'(?:\\.|[^'\n])*'?`},
	"orion.lib#number_decimal":     {Name: "constant.numeric.number", Match: `\b(?:\.\d+|\d+\.?\d*)(?:[eE][+-]?\d+)?\b`},
	"orion.lib#number_hex":         {Name: "constant.numeric.hex", Match: `\b0[xX][0-9A-Fa-f]+\b`},

	"orion.lib#brace_open":        {Name: "punctuation.section.block.begin", Match: `\{`},
	"orion.lib#brace_close":       {Name: "punctuation.section.block.end", Match: `\}`},
	"orion.lib#bracket_open":      {Name: "punctuation.section.bracket.begin", Match: `\[`},
	"orion.lib#bracket_close":     {Name: "punctuation.section.bracket.end", Match: `\]`},
	"orion.lib#parenthesis_open":  {Name: "punctuation.section.parens.begin", Match: `\(`},
	"orion.lib#parenthesis_close": {Name: "punctuation.section.parens.end", Match: `\)`},
}

// DefaultLibrary returns a copy of the shared fragments of the orion.lib and
// orion.c-like libraries.
func DefaultLibrary() Library {
	return orion.Merge(nil)
}
