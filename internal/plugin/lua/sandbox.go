package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// blockedGlobals are base library functions that load code from disk or
// from strings behind the editor's back.
var blockedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// Sandbox restricts what user scripts can reach.
type Sandbox struct {
	L *lua.LState

	print func(string)
}

// NewSandbox creates a sandbox for L. print receives the output of Lua's
// print function; nil keeps the default print.
func NewSandbox(L *lua.LState, print func(string)) *Sandbox {
	return &Sandbox{L: L, print: print}
}

// Install removes blocked globals and redirects print.
func (s *Sandbox) Install() {
	for _, name := range blockedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installPrint()
}

// installPrint replaces print so output cannot corrupt the screen.
func (s *Sandbox) installPrint() {
	if s.print == nil {
		return
	}
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		s.print(strings.Join(parts, "\t"))
		return 0
	}))
}

// Blocked reports whether name is removed by the sandbox.
func (s *Sandbox) Blocked(name string) bool {
	for _, b := range blockedGlobals {
		if b == name {
			return true
		}
	}
	return false
}
