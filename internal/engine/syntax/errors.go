package syntax

import (
	"errors"
	"fmt"
)

// ErrUnknownSyntax is returned when no definition matches a name.
var ErrUnknownSyntax = errors.New("unknown syntax")

// ConfigError reports a malformed syntax definition. Highlighting for the
// affected file type falls back to Normal.
type ConfigError struct {
	Name    string // Definition name, may be empty
	Field   string // Offending field
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	if e.Field != "" {
		return fmt.Sprintf("syntax %s: %s: %s", name, e.Field, e.Message)
	}
	return fmt.Sprintf("syntax %s: %s", name, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
