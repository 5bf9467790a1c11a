package syntax

import "github.com/pkg/errors"

// A Pattern is one entry of a Table. It is either a reference to a fragment
// defined in a Library (Include is set), or an inline rule pairing a scope
// name with a regular expression (Name and Match are set). Never both.
type Pattern struct {
	Include string `json:"include,omitempty" yaml:"include,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Match   string `json:"match,omitempty" yaml:"match,omitempty"`
}

// Include returns a Pattern referencing the fragment with the given id, for
// example "orion.lib#number_hex".
func Include(id string) Pattern {
	return Pattern{Include: id}
}

// Inline returns a Pattern that marks text matched by `match` with the scope
// `name`.
func Inline(name, match string) Pattern {
	return Pattern{Name: name, Match: match}
}

func (p Pattern) IsInclude() bool {
	return p.Include != ""
}

// Validate checks that the Pattern has exactly one of its two shapes.
func (p Pattern) Validate() error {
	switch {
	case p.Include != "" && (p.Name != "" || p.Match != ""):
		return errors.Wrap(ErrInvalidPattern, "include cannot be combined with name or match")
	case p.Include != "":
		return nil
	case p.Name == "":
		return errors.Wrap(ErrInvalidPattern, "inline pattern has no scope name")
	case p.Match == "":
		return errors.Wrapf(ErrInvalidPattern, "inline pattern %q has no match expression", p.Name)
	}
	return nil
}

// A Table is the ordered list of patterns a highlighting engine evaluates
// for one language, along with the identifier and content types the engine
// uses to select it. The engine tries patterns top-to-bottom; the first one
// to match at a scan position wins.
type Table struct {
	ID           string    `json:"id" yaml:"id"`
	ContentTypes []string  `json:"contentTypes" yaml:"contentTypes"`
	Patterns     []Pattern `json:"patterns" yaml:"patterns"`
}

// Clone returns a deep copy of the Table.
func (t Table) Clone() Table {
	c := Table{ID: t.ID}
	c.ContentTypes = append([]string(nil), t.ContentTypes...)
	c.Patterns = append([]Pattern(nil), t.Patterns...)
	return c
}

func (t Table) Validate() error {
	if t.ID == "" {
		return errors.Wrap(ErrInvalidPattern, "table has no id")
	}
	if len(t.Patterns) == 0 {
		return errors.Wrapf(ErrInvalidPattern, "table %s has no patterns", t.ID)
	}
	for i, p := range t.Patterns {
		if err := p.Validate(); err != nil {
			id := p.Include
			if id == "" {
				id = p.Name
			}
			return &ResolveError{Index: i, ID: id, Err: err}
		}
	}
	return nil
}
