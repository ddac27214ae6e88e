package input

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned when standard input is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TerminalError is a failure to configure, read from or size the terminal.
// It is fatal to the editor.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// DecodeError describes input bytes that did not form a known sequence.
type DecodeError struct {
	Seq    []byte
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("input decode %q: %s", e.Seq, e.Reason)
}
