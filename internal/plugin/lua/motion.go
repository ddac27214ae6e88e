package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// motion wraps a cursor movement that takes no arguments.
func (h *Host) motion(move func()) lua.LGFunction {
	return func(L *lua.LState) int {
		move()
		return 0
	}
}

// point([x, y]) moves the cursor to the one-based (x, y) when given and
// returns the zero-based position.
func (h *Host) point(L *lua.LState) int {
	if x, y, ok := optPair(L); ok {
		h.ed.Warp(x-1, y-1)
	}
	x, y := h.ed.Point()
	return pushPair(L, x, y)
}

// mark([x, y]) sets the mark when given, -1, -1 clearing it, and returns
// the mark.
func (h *Host) mark(L *lua.LState) int {
	if x, y, ok := optPair(L); ok {
		h.ed.SetMark(x, y)
	}
	x, y := h.ed.Mark()
	return pushPair(L, x, y)
}
