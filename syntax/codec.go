package syntax

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// A Grammar is the file form of a Table: the table itself plus any fragments
// it needs beyond the default library.
type Grammar struct {
	Table     `yaml:",inline"`
	Fragments Library `json:"fragments,omitempty" yaml:"fragments,omitempty"`
}

// Library returns the default library overlaid with the grammar's own
// fragments.
func (g Grammar) Library() Library {
	return DefaultLibrary().Merge(g.Fragments)
}

// EncodeJSON writes the table in the shape expected by the host highlighting
// engine: an object with "id", "contentTypes" and "patterns".
func EncodeJSON(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// EncodeYAML writes the table as YAML with the same keys as EncodeJSON.
func EncodeYAML(w io.Writer, t Table) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "encode table")
	}
	_, err = w.Write(data)
	return err
}

// DecodeGrammar reads a grammar written in YAML or JSON and validates its
// table.
func DecodeGrammar(r io.Reader) (Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Grammar{}, err
	}

	var g Grammar
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return Grammar{}, errors.Wrap(err, "decode grammar")
	}
	if err := g.Table.Validate(); err != nil {
		return Grammar{}, err
	}
	for id, f := range g.Fragments {
		if f.Name == "" || (f.Match == "") == (f.Begin == "") {
			return Grammar{}, errors.Wrapf(ErrInvalidPattern, "fragment %q needs a name and exactly one of match or begin", id)
		}
	}
	return g, nil
}

// LoadGrammar reads the grammar file at path.
func LoadGrammar(path string) (Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grammar{}, err
	}
	defer f.Close()

	g, err := DecodeGrammar(f)
	if err != nil {
		return Grammar{}, errors.Wrapf(err, "load %s", path)
	}
	return g, nil
}
