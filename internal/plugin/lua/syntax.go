package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// Syntax errors surface as the status message through the editor.

// set_syntax(name) selects a registered syntax definition.
func (h *Host) setSyntax(L *lua.LState) int {
	if name, ok := optString(L, 1); ok {
		_ = h.ed.SetSyntax(name)
	}
	return 0
}

// set_syntax_keywords({...}) sets the keywords; a trailing "|" marks a
// secondary keyword.
func (h *Host) setSyntaxKeywords(L *lua.LState) int {
	if words, ok := stringList(L, 1); ok {
		_ = h.ed.SetSyntaxKeywords(words)
	}
	return 0
}

// set_syntax_comments(line, open, close) sets the comment tokens.
func (h *Host) setSyntaxComments(L *lua.LState) int {
	line, ok1 := optString(L, 1)
	open, ok2 := optString(L, 2)
	closing, ok3 := optString(L, 3)
	if ok1 && ok2 && ok3 {
		_ = h.ed.SetSyntaxComments(line, open, closing)
	}
	return 0
}

// syntax_highlight_numbers(on) switches number highlighting.
func (h *Host) highlightNumbers(L *lua.LState) int {
	_ = h.ed.SetHighlightNumbers(flag(L, 1))
	return 0
}

// syntax_highlight_strings(on) switches string highlighting.
func (h *Host) highlightStrings(L *lua.LState) int {
	_ = h.ed.SetHighlightStrings(flag(L, 1))
	return 0
}
