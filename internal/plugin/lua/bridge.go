package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// Argument helpers for the editor primitives. Arguments are optional
// throughout: a primitive called with the wrong type behaves as if the
// argument was missing.

// optString returns argument n when it is a string or a number.
func optString(L *lua.LState, n int) (string, bool) {
	if L.GetTop() < n {
		return "", false
	}
	switch v := L.Get(n).(type) {
	case lua.LString:
		return string(v), true
	case lua.LNumber:
		return v.String(), true
	}
	return "", false
}

// optInt returns argument n when it is a number.
func optInt(L *lua.LState, n int) (int, bool) {
	if L.GetTop() < n {
		return 0, false
	}
	if v, ok := L.Get(n).(lua.LNumber); ok {
		return int(v), true
	}
	return 0, false
}

// optPair returns arguments 1 and 2 when both are numbers.
func optPair(L *lua.LState) (int, int, bool) {
	x, okX := optInt(L, 1)
	y, okY := optInt(L, 2)
	return x, y, okX && okY
}

// flag reads argument n as a switch: true, or the number 1.
func flag(L *lua.LState, n int) bool {
	switch v := L.Get(n).(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return v == 1
	}
	return false
}

// stringList returns the array part of argument n as strings.
func stringList(L *lua.LState, n int) ([]string, bool) {
	t, ok := L.Get(n).(*lua.LTable)
	if !ok {
		return nil, false
	}
	var out []string
	for i := 1; i <= t.Len(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out, true
}

// pushPair pushes two numbers and returns the result count.
func pushPair(L *lua.LState, a, b int) int {
	L.Push(lua.LNumber(a))
	L.Push(lua.LNumber(b))
	return 2
}

// pushString pushes s and returns the result count.
func pushString(L *lua.LState, s string) int {
	L.Push(lua.LString(s))
	return 1
}

// pushBool pushes b and returns the result count.
func pushBool(L *lua.LState, b bool) int {
	L.Push(lua.LBool(b))
	return 1
}

// pushNil pushes nil and returns the result count.
func pushNil(L *lua.LState) int {
	L.Push(lua.LNil)
	return 1
}
