package syntax

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Registry holds the known syntax definitions in registration order.
type Registry struct {
	mu   sync.RWMutex
	defs []*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds def, replacing any definition with the same name.
func (r *Registry) Register(def *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.defs {
		if strings.EqualFold(d.Name, def.Name) {
			r.defs[i] = def
			return
		}
	}
	r.defs = append(r.defs, def)
}

// Lookup returns the definition answering to name or one of its aliases.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.defs {
		if d.Matches(name) {
			return d, true
		}
	}
	return nil, false
}

// Names returns the registered definition names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for _, d := range r.defs {
		names = append(names, d.Name)
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Detect picks a definition for filename. File patterns are tried first;
// otherwise the language name chroma's lexer registry assigns to the file is
// looked up among the definitions and their aliases.
func (r *Registry) Detect(filename string) (*Definition, bool) {
	if filename == "" {
		return nil, false
	}
	base := filepath.Base(filename)

	r.mu.RLock()
	for _, d := range r.defs {
		for _, pattern := range d.Files {
			if ok, _ := filepath.Match(pattern, base); ok {
				r.mu.RUnlock()
				return d, true
			}
		}
	}
	r.mu.RUnlock()

	lang := Language(filename)
	if lang == "" {
		return nil, false
	}
	return r.Lookup(lang)
}

// Language returns the name chroma gives the language of filename, or "".
func Language(filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
