package syntax

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultDefinitions []byte

// fileDefinition is the on-disk form of a Definition.
type fileDefinition struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	Files    []string `yaml:"files"`
	Keywords []string `yaml:"keywords"`
	Comments struct {
		Line       string `yaml:"line"`
		BlockOpen  string `yaml:"block_open"`
		BlockClose string `yaml:"block_close"`
	} `yaml:"comments"`
	Strings *bool `yaml:"highlight_strings"`
	Numbers *bool `yaml:"highlight_numbers"`
}

func (f *fileDefinition) definition() *Definition {
	d := NewDefinition(f.Name)
	d.Aliases = f.Aliases
	d.Files = f.Files
	d.Keywords = f.Keywords
	d.LineOpen = f.Comments.Line
	d.BlockOpen = f.Comments.BlockOpen
	d.BlockClose = f.Comments.BlockClose
	if f.Strings != nil && !*f.Strings {
		d.Flags &^= HighlightStrings
	}
	if f.Numbers != nil && !*f.Numbers {
		d.Flags &^= HighlightNumbers
	}
	return d
}

// Load reads a YAML list of definitions into r. Definitions that fail
// validation are skipped and reported in the returned error; the valid ones
// are still registered.
func (r *Registry) Load(src io.Reader) error {
	var files []fileDefinition
	if err := yaml.NewDecoder(src).Decode(&files); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &ConfigError{Message: "invalid YAML", Err: err}
	}

	var errs []error
	for i := range files {
		def := files[i].definition()
		if def.Name == "" {
			errs = append(errs, &ConfigError{Field: "name", Message: fmt.Sprintf("entry %d has no name", i+1)})
			continue
		}
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		r.Register(def)
	}
	return errors.Join(errs...)
}

// LoadFile reads definitions from a YAML file. A missing file is not an error.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening syntax file %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("loading syntax file %s: %w", path, err)
	}
	return nil
}

// DefaultRegistry returns a registry holding the built-in definitions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Load(bytes.NewReader(defaultDefinitions))
	return r
}
