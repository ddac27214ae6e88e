package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// State is a gopher-lua LState opened with the base, table, string and math
// libraries only, with the sandbox installed.
//
// Like the LState it wraps, a State belongs to the editor's main loop and
// must not be shared between goroutines. It is reentrant: a function
// registered with RegisterFunc may call back into the State.
type State struct {
	L *lua.LState

	sandbox *Sandbox
	closed  bool
}

// StateOption configures a State.
type StateOption func(*stateConfig)

type stateConfig struct {
	print func(string)
}

// WithPrint sends the output of Lua's print to fn instead of stdout, which
// belongs to the screen.
func WithPrint(fn func(string)) StateOption {
	return func(c *stateConfig) { c.print = fn }
}

// NewState creates a sandboxed state.
func NewState(opts ...StateOption) (*State, error) {
	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	// Each opener leaves its module table on the stack.
	L.SetTop(0)

	s := &State{L: L, sandbox: NewSandbox(L, cfg.print)}
	s.sandbox.Install()
	return s, nil
}

// guard runs fn on an open state and turns a Go panic raised inside the
// interpreter into an error.
func (s *State) guard(fn func() error) (err error) {
	if s.closed {
		return ErrStateClosed
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// DoFile runs the script at path.
func (s *State) DoFile(path string) error {
	return s.guard(func() error { return s.L.DoFile(path) })
}

// DoString runs code.
func (s *State) DoString(code string) error {
	return s.guard(func() error { return s.L.DoString(code) })
}

// HasFunction reports whether name is a global function.
func (s *State) HasFunction(name string) bool {
	return s.GetGlobal(name).Type() == lua.LTFunction
}

// Call calls the global function name and returns all of its results. The
// stack is left as it was found, also on error.
func (s *State) Call(name string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.guard(func() error {
		fn := s.L.GetGlobal(name)
		switch fn.Type() {
		case lua.LTFunction:
		case lua.LTNil:
			return fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
		default:
			return fmt.Errorf("%q is not a function (got %s)", name, fn.Type())
		}

		base := s.L.GetTop()
		defer s.L.SetTop(base)

		s.L.Push(fn)
		for _, arg := range args {
			s.L.Push(arg)
		}
		if err := s.L.PCall(len(args), lua.MultRet, nil); err != nil {
			return err
		}
		results = make([]lua.LValue, 0, s.L.GetTop()-base)
		for i := base + 1; i <= s.L.GetTop(); i++ {
			results = append(results, s.L.Get(i))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetGlobal returns the global name, or nil once the state is closed.
func (s *State) GetGlobal(name string) lua.LValue {
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// RegisterFunc makes fn available to scripts as the global name.
func (s *State) RegisterFunc(name string, fn lua.LGFunction) {
	if !s.closed {
		s.L.SetGlobal(name, s.L.NewFunction(fn))
	}
}

func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

func (s *State) IsClosed() bool {
	return s.closed
}

// Close releases the interpreter. Every later call fails with
// ErrStateClosed. Closing twice is a no-op.
func (s *State) Close() error {
	if !s.closed {
		s.L.Close()
		s.closed = true
	}
	return nil
}
