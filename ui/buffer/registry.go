package buffer

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/fivemoreminix/ameliaview/syntax"
)

var ErrNoLanguage = errors.New("no language registered")

// A Definition is an uncompiled Language.
type Definition struct {
	Name      string
	Filetypes []string
	Table     syntax.Table
	Library   syntax.Library // Nil selects syntax.DefaultLibrary()
}

// A Registry finds languages by name, file extension, or content type. A
// language is compiled on first use and cached until it is registered again.
type Registry struct {
	mu       sync.RWMutex
	defs     map[string]Definition
	order    []string
	compiled *cache.Cache
}

func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[string]Definition),
		compiled: cache.New(cache.NoExpiration, 0),
	}
}

// DefaultRegistry returns a Registry holding the Amelia language.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Definition{
		Name:      "Amelia",
		Filetypes: syntax.AmeliaExtensions,
		Table:     syntax.Amelia(),
	})
	return r
}

// Register adds def, replacing any definition with the same name.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defs[def.Name]; !ok {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
	r.compiled.Delete(def.Name)
}

// Names returns the registered language names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Language returns the compiled language called name.
func (r *Registry) Language(name string) (*Language, error) {
	if lang, ok := r.compiled.Get(name); ok {
		return lang.(*Language), nil
	}

	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNoLanguage, "named %q", name)
	}

	lib := def.Library
	if lib == nil {
		lib = syntax.DefaultLibrary()
	}
	lang, err := NewLanguage(def.Name, def.Filetypes, def.Table, lib)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s", def.Name)
	}
	r.compiled.Set(name, lang, cache.NoExpiration)
	return lang, nil
}

// ForFile returns the language whose file types include the extension of
// path.
func (r *Registry) ForFile(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := r.find(func(def Definition) bool {
		for _, ft := range def.Filetypes {
			if strings.ToLower(ft) == ext {
				return true
			}
		}
		return false
	})
	if !ok {
		return nil, errors.Wrapf(ErrNoLanguage, "for file %s", path)
	}
	return r.Language(name)
}

// ForContentType returns the language declaring the content type ct.
func (r *Registry) ForContentType(ct string) (*Language, error) {
	name, ok := r.find(func(def Definition) bool {
		for _, c := range def.Table.ContentTypes {
			if c == ct {
				return true
			}
		}
		return false
	})
	if !ok {
		return nil, errors.Wrapf(ErrNoLanguage, "for content type %s", ct)
	}
	return r.Language(name)
}

func (r *Registry) find(pred func(Definition) bool) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if pred(r.defs[name]) {
			return name, true
		}
	}
	return "", false
}
