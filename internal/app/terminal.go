package app

import (
	"fmt"
	"os"

	"github.com/dshills/kilua/internal/config"
	"github.com/dshills/kilua/internal/input"
	"github.com/dshills/kilua/internal/renderer/backend"
)

// ansiTerminal pairs the ANSI backend with the raw-mode key decoder on the
// controlling terminal.
type ansiTerminal struct {
	*backend.ANSI
	*input.Decoder
	tty *input.TTY
}

// Init switches the terminal to raw mode.
func (t *ansiTerminal) Init() error {
	if err := t.tty.EnableRawMode(); err != nil {
		return err
	}
	return t.ANSI.Init()
}

// Shutdown clears the screen and restores the terminal settings.
func (t *ansiTerminal) Shutdown() {
	t.ANSI.Shutdown()
	_ = t.tty.Restore()
}

// OpenTerminal creates the terminal named by kind, config.BackendANSI or
// config.BackendTCell, on standard input and output.
func OpenTerminal(kind string, log *Logger) (Terminal, error) {
	if log == nil {
		log = NullLogger
	}
	switch kind {
	case config.BackendANSI, "":
		tty, err := input.OpenTTY(os.Stdin)
		if err != nil {
			return nil, err
		}
		dec := input.NewDecoder(tty)
		inputLog := log.WithComponent("input")
		dec.OnDecodeError = func(err *input.DecodeError) {
			inputLog.Debug("%v", err)
		}
		return &ansiTerminal{
			ANSI:    backend.NewANSI(os.Stdout, tty.Size),
			Decoder: dec,
			tty:     tty,
		}, nil
	case config.BackendTCell:
		term, err := backend.NewTerminal()
		if err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
