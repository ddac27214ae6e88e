package lua

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kilua/internal/editor"
)

// Event handler names called by the Host.
const (
	HandlerKey    = "on_key"
	HandlerLoaded = "on_loaded"
	HandlerSaved  = "on_saved"
	HandlerIdle   = "on_idle"
)

// Host binds a Lua state to an editor: it registers the editor
// primitives as Lua globals and forwards editor events to the user's
// handlers. Host implements editor.EventSink.
type Host struct {
	state *State
	ed    *editor.Editor

	// fatal holds an error from the editor that must end the session,
	// such as a terminal read failure inside a prompt. Lua only sees a
	// raised error; the outermost Go caller gets fatal back.
	fatal error

	// depth counts nested entries into Lua: handlers run from inside a
	// primitive, such as on_loaded during open().
	depth int
}

var _ editor.EventSink = (*Host)(nil)

// NewHost creates a sandboxed state for ed with every primitive
// registered.
func NewHost(ed *editor.Editor, opts ...StateOption) (*Host, error) {
	state, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	h := &Host{state: state, ed: ed}
	for name, fn := range h.primitives() {
		state.RegisterFunc(name, fn)
	}
	return h, nil
}

// State returns the underlying Lua state.
func (h *Host) State() *State {
	return h.state
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

// LoadFile runs an init script.
func (h *Host) LoadFile(path string) error {
	return h.run("load", path, func() error {
		return h.state.DoFile(path)
	})
}

// Eval runs a line of Lua.
func (h *Host) Eval(code string) error {
	return h.run("eval", "", func() error {
		return h.state.DoString(code)
	})
}

// CallFunction calls the global function name with no arguments. Unlike
// event handlers the function must exist.
func (h *Host) CallFunction(name string) error {
	return h.run("call", name, func() error {
		_, err := h.state.Call(name)
		return err
	})
}

// OnKey calls on_key(name).
func (h *Host) OnKey(name string) error {
	return h.dispatch(HandlerKey, lua.LString(name))
}

// OnLoaded calls on_loaded(filename).
func (h *Host) OnLoaded(filename string) error {
	return h.dispatch(HandlerLoaded, lua.LString(filename))
}

// OnSaved calls on_saved(filename).
func (h *Host) OnSaved(filename string) error {
	return h.dispatch(HandlerSaved, lua.LString(filename))
}

// OnIdle calls on_idle().
func (h *Host) OnIdle() error {
	return h.dispatch(HandlerIdle)
}

// dispatch calls handler if the script defines it.
func (h *Host) dispatch(handler string, args ...lua.LValue) error {
	if !h.state.HasFunction(handler) {
		return nil
	}
	return h.run("call", handler, func() error {
		_, err := h.state.Call(handler, args...)
		return err
	})
}

// run enters Lua through fn and turns the outcome into the error for the
// Go caller. A fatal error is cleared only once the outermost entry
// returns.
func (h *Host) run(op, name string, fn func() error) error {
	h.depth++
	err := fn()
	h.depth--

	if fatal := h.fatal; fatal != nil {
		if h.depth == 0 {
			h.fatal = nil
		}
		return fatal
	}
	if err == nil || errors.Is(err, ErrStateClosed) {
		return err
	}
	return &ScriptError{Op: op, Name: name, Err: err}
}

// fail records a fatal editor error and aborts the running Lua code.
func (h *Host) fail(L *lua.LState, err error) int {
	h.fatal = err
	L.RaiseError("%v", err)
	return 0
}
