package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// loadConfig is a [kong.ConfigurationLoader] for YAML config files.
//
// Nested mappings are joined with hyphens to form flag names, so both of
// these set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Command flags may be nested under the command name:
//
//	cat:
//	  style: github
//
// Keys may use underscores in place of hyphens. Command-line flags override
// config file values.
func loadConfig(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil // Empty file
		}
		return nil, errors.Wrap(err, "parse config")
	}

	values := config{}
	flatten(values, "", doc)
	return values, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver]. A flag of a command is looked up under
// the command's name first ("cat: {style: github}"), then on its own.
func (c config) Resolve(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
	if parent != nil && parent.Command != nil {
		if value, ok := c[parent.Command.Name+"-"+flag.Name]; ok {
			return value, nil
		}
	}
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}
	return nil, nil // Not found; kong uses the default
}

func flatten(into config, prefix string, m map[string]any) {
	for key, value := range m {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(into, name, v)
		case int, int64, uint64, float64:
			// Kong parses numbers from strings
			into[name] = fmt.Sprint(v)
		default:
			into[name] = v
		}
	}
}
