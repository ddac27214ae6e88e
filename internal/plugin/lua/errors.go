package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrFunctionNotFound is returned by Call for an undefined global.
	ErrFunctionNotFound = errors.New("lua function not found")
)

// ScriptError reports a failure inside user Lua code: loading an init
// script, running an event handler, or evaluating a line.
type ScriptError struct {
	Op   string // "load", "call" or "eval"
	Name string // script path or function name
	Err  error
}

func (e *ScriptError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("lua %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lua %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
