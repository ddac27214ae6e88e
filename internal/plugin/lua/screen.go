package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// width() returns the number of text columns.
func (h *Host) width(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.Width()))
	return 1
}

// height() returns the number of text rows.
func (h *Host) height(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.Height()))
	return 1
}

// status(msg) sets the status message.
func (h *Host) status(L *lua.LState) int {
	msg, _ := optString(L, 1)
	h.ed.SetStatus("%s", msg)
	return 0
}

// key() waits for a key and returns its name.
func (h *Host) key(L *lua.LState) int {
	name, err := h.ed.ReadKey()
	if err != nil {
		return h.fail(L, err)
	}
	return pushString(L, name)
}

// prompt(label) reads a line of input. It returns nil when cancelled.
func (h *Host) prompt(L *lua.LState) int {
	label, _ := optString(L, 1)
	text, ok, err := h.ed.Prompt(label)
	if err != nil {
		return h.fail(L, err)
	}
	if !ok {
		return pushNil(L)
	}
	return pushString(L, text)
}

// find() runs the interactive search.
func (h *Host) find(L *lua.LState) int {
	if err := h.ed.Find(); err != nil {
		return h.fail(L, err)
	}
	return 0
}

// eval() prompts for a line of Lua and runs it. Errors are shown in the
// status message.
func (h *Host) eval(L *lua.LState) int {
	code, ok, err := h.ed.Prompt("Eval: ")
	if err != nil {
		return h.fail(L, err)
	}
	if !ok {
		return 0
	}
	if err := L.DoString(code); err != nil {
		if h.fatal != nil {
			L.RaiseError("%v", h.fatal)
			return 0
		}
		h.ed.SetStatus("%v", err)
	}
	return 0
}

// exit() ends the session.
func (h *Host) exit(L *lua.LState) int {
	h.ed.Quit()
	return 0
}
