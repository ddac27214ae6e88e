package syntax

import (
	"strings"
)

// Flags toggles optional highlight classes.
type Flags uint8

const (
	// HighlightStrings tags quoted text as String.
	HighlightStrings Flags = 1 << iota
	// HighlightNumbers tags numeric literals as Number.
	HighlightNumbers
)

// DefaultFlags enables every optional class.
const DefaultFlags = HighlightStrings | HighlightNumbers

// Has reports whether f contains flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// secondaryMarker ends a keyword that belongs to the secondary class.
const secondaryMarker = "|"

// Definition describes how to highlight one kind of file.
// A Definition is never modified after construction; the With* methods
// return modified copies.
type Definition struct {
	Name       string
	Aliases    []string
	Files      []string // file name glob patterns
	Keywords   []string // entries ending in "|" are Keyword2
	LineOpen   string   // single-line comment token
	BlockOpen  string
	BlockClose string
	Flags      Flags
}

// NewDefinition creates an empty definition with strings and numbers
// highlighting enabled.
func NewDefinition(name string) *Definition {
	return &Definition{Name: name, Flags: DefaultFlags}
}

func (d *Definition) clone() *Definition {
	c := *d
	c.Aliases = append([]string(nil), d.Aliases...)
	c.Files = append([]string(nil), d.Files...)
	c.Keywords = append([]string(nil), d.Keywords...)
	return &c
}

// WithKeywords returns a copy using the given keyword list.
func (d *Definition) WithKeywords(keywords []string) *Definition {
	c := d.clone()
	c.Keywords = append([]string(nil), keywords...)
	return c
}

// WithComments returns a copy using the given comment tokens.
func (d *Definition) WithComments(line, blockOpen, blockClose string) *Definition {
	c := d.clone()
	c.LineOpen = line
	c.BlockOpen = blockOpen
	c.BlockClose = blockClose
	return c
}

// WithFlag returns a copy with flag switched on or off.
func (d *Definition) WithFlag(flag Flags, on bool) *Definition {
	c := d.clone()
	if on {
		c.Flags |= flag
	} else {
		c.Flags &^= flag
	}
	return c
}

// Matches reports whether the definition answers to name, case-insensitively.
func (d *Definition) Matches(name string) bool {
	if strings.EqualFold(d.Name, name) {
		return true
	}
	for _, a := range d.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// Validate checks the definition for configuration mistakes.
func (d *Definition) Validate() error {
	if (d.BlockOpen == "") != (d.BlockClose == "") {
		return &ConfigError{
			Name:    d.Name,
			Field:   "comments",
			Message: "block comment needs both an open and a close token",
		}
	}
	for _, tok := range []string{d.LineOpen, d.BlockOpen, d.BlockClose} {
		if strings.ContainsAny(tok, " \t\n") {
			return &ConfigError{
				Name:    d.Name,
				Field:   "comments",
				Message: "comment token " + quote(tok) + " contains whitespace",
			}
		}
	}
	for _, kw := range d.Keywords {
		word := strings.TrimSuffix(kw, secondaryMarker)
		if word == "" {
			return &ConfigError{
				Name:    d.Name,
				Field:   "keywords",
				Message: "empty keyword",
			}
		}
		if strings.ContainsAny(word, " \t\n") {
			return &ConfigError{
				Name:    d.Name,
				Field:   "keywords",
				Message: "keyword " + quote(kw) + " contains whitespace",
			}
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
