package editor

import (
	"github.com/dshills/kilua/internal/engine/syntax"
)

// syntaxOrDefault returns the current buffer's definition, or a fresh one
// named after the buffer when it has none.
func (e *Editor) syntaxOrDefault() *syntax.Definition {
	b := e.Current()
	if b.syntax != nil {
		return b.syntax
	}
	return syntax.NewDefinition(b.name)
}

// applySyntax installs def on the current buffer. An invalid definition
// turns highlighting off and is reported in the status message.
func (e *Editor) applySyntax(def *syntax.Definition) error {
	err := e.Current().setSyntax(def)
	e.report(err)
	return err
}

// SetSyntaxKeywords replaces the keyword list of the current buffer's
// syntax. Keywords ending in "|" are highlighted as secondary keywords.
func (e *Editor) SetSyntaxKeywords(keywords []string) error {
	return e.applySyntax(e.syntaxOrDefault().WithKeywords(keywords))
}

// SetSyntaxComments sets the single line and block comment tokens of the
// current buffer's syntax.
func (e *Editor) SetSyntaxComments(line, blockOpen, blockClose string) error {
	return e.applySyntax(e.syntaxOrDefault().WithComments(line, blockOpen, blockClose))
}

// SetHighlightNumbers switches number highlighting.
func (e *Editor) SetHighlightNumbers(on bool) error {
	return e.applySyntax(e.syntaxOrDefault().WithFlag(syntax.HighlightNumbers, on))
}

// SetHighlightStrings switches string highlighting.
func (e *Editor) SetHighlightStrings(on bool) error {
	return e.applySyntax(e.syntaxOrDefault().WithFlag(syntax.HighlightStrings, on))
}

// SetSyntax selects a registered definition by name or alias for the
// current buffer.
func (e *Editor) SetSyntax(name string) error {
	def, ok := e.registry.Lookup(name)
	if !ok {
		err := &syntax.ConfigError{Name: name, Field: "name", Message: "no such definition", Err: syntax.ErrUnknownSyntax}
		e.report(err)
		return err
	}
	return e.applySyntax(def)
}
