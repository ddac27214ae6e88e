package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// at() returns the character under the cursor, "\n" past the end of a row.
func (h *Host) at(L *lua.LState) int {
	return pushString(L, h.ed.At())
}

// delete() removes the character before the cursor.
func (h *Host) delete(L *lua.LState) int {
	h.ed.Delete()
	return 0
}

// dirty() reports unsaved changes.
func (h *Host) dirty(L *lua.LState) int {
	return pushBool(L, h.ed.Dirty())
}

// get_line() returns the current row from the cursor onwards.
func (h *Host) getLine(L *lua.LState) int {
	line, ok := h.ed.Line()
	if !ok {
		return 0
	}
	return pushString(L, line)
}

// insert(text) types text at the cursor.
func (h *Host) insert(L *lua.LState) int {
	if text, ok := optString(L, 1); ok {
		h.ed.Insert(text)
	}
	return 0
}

// kill() removes the current row.
func (h *Host) kill(L *lua.LState) int {
	h.ed.Kill()
	return 0
}

// undo() reverts the last edit.
func (h *Host) undo(L *lua.LState) int {
	_ = h.ed.Undo()
	return 0
}

// selection() returns the text between point and mark, or nil.
func (h *Host) selection(L *lua.LState) int {
	text, ok := h.ed.Selection()
	if !ok {
		return pushNil(L)
	}
	return pushString(L, text)
}

// cut_selection() deletes the text between point and mark.
func (h *Host) cutSelection(L *lua.LState) int {
	h.ed.CutSelection()
	return 0
}
