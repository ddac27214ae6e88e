package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit ends the loop after a script called exit(). Run maps it to a
	// nil error.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoInitScript means none of the init scripts exists. Without one the
	// editor has no key bindings.
	ErrNoInitScript = errors.New("no init script loaded")
)

// InitError is a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError is a fatal failure of one step of the application: loading
// an init script, drawing a frame or reading a key.
type OperationError struct {
	Op     string // "load", "draw", "read"
	Target string // script path for "load"
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// RecoveredPanicError wraps a panic raised inside the editor loop. Run
// returns it after the terminal has been restored, so the stack can be
// printed on a usable screen.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	if e.Stack == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}

// ErrorList collects the errors of a teardown that keeps going after a
// step fails.
type ErrorList []error

// Add appends err unless it is nil.
func (l *ErrorList) Add(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is and errors.As look at every collected error.
func (l ErrorList) Unwrap() []error {
	return l
}

// AsError returns nil for an empty list and the list otherwise.
func (l ErrorList) AsError() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
