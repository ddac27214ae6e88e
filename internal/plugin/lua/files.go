package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// open([path]) loads a file into the current buffer, prompting for the
// path when none is given.
func (h *Host) open(L *lua.LState) int {
	path, ok := optString(L, 1)
	if !ok {
		var err error
		path, ok, err = h.ed.Prompt("Open: ")
		if err != nil {
			return h.fail(L, err)
		}
		if !ok || path == "" {
			return 0
		}
	}
	// Failures are already in the status message.
	_ = h.ed.Open(path)
	return 0
}

// save([path]) writes the current buffer, to path when given.
func (h *Host) save(L *lua.LState) int {
	path, _ := optString(L, 1)
	_ = h.ed.Save(path)
	return 0
}
