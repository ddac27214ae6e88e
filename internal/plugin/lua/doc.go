// Package lua runs the user's Lua scripts against the editor.
//
// # State
//
// State wraps a gopher-lua LState with the base, table, string and math
// libraries only:
//
//	state, err := lua.NewState(lua.WithPrint(func(s string) { log.Print(s) }))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
// # Sandbox
//
// The Sandbox removes the functions that load code on their own (dofile,
// loadfile, load, loadstring, require) and redirects print, since stdout
// belongs to the terminal while the editor runs.
//
// # Host
//
// Host registers the editor primitives as globals and implements
// editor.EventSink by calling on_key, on_loaded, on_saved and on_idle when
// the scripts define them:
//
//	host, err := lua.NewHost(ed)
//	if err != nil {
//	    return err
//	}
//	ed.SetSink(host)
//	if err := host.LoadFile(path); err != nil {
//	    return err
//	}
//
// Errors raised by Lua code come back as *ScriptError. Errors from the
// terminal during an interactive primitive such as prompt are returned
// unwrapped so the caller can treat them as fatal.
package lua
