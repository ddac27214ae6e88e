package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// buffer([n]) selects buffer n when given and returns the current
// buffer's zero-based index.
func (h *Host) buffer(L *lua.LState) int {
	list := h.ed.Buffers()
	if n, ok := optInt(L, 1); ok {
		list.Select(n)
	}
	L.Push(lua.LNumber(list.Index()))
	return 1
}

// buffers() returns the number of buffers.
func (h *Host) bufferCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.Buffers().Len()))
	return 1
}

// create_buffer([name]) opens a new empty buffer and makes it current.
func (h *Host) createBuffer(L *lua.LState) int {
	name, _ := optString(L, 1)
	h.ed.Buffers().Create(name)
	return 0
}

// buffer_name([name]) renames the current buffer when given and returns
// its name.
func (h *Host) bufferName(L *lua.LState) int {
	b := h.ed.Current()
	if name, ok := optString(L, 1); ok {
		b.SetName(name)
	}
	return pushString(L, b.Name())
}

// kill_buffer() closes the current buffer.
func (h *Host) killBuffer(L *lua.LState) int {
	h.ed.Buffers().Kill()
	return 0
}

// select_buffer(name) makes the named buffer current.
func (h *Host) selectBuffer(L *lua.LState) int {
	name, ok := optString(L, 1)
	if !ok {
		return pushBool(L, false)
	}
	return pushBool(L, h.ed.Buffers().SelectByName(name))
}
