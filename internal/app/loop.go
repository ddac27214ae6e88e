package app

import (
	"errors"
	"runtime/debug"

	"github.com/dshills/kilua/internal/editor"
	"github.com/dshills/kilua/internal/input/key"
	"github.com/dshills/kilua/internal/plugin/lua"
)

// Run takes over the terminal, opens the file, calls the eval function and
// processes events until a script calls exit(). The terminal is restored
// before Run returns, also after a panic.
func (app *Application) Run() (err error) {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	if err := app.term.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.term.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.log.Error("%v", perr)
			err = perr
		}
	}()

	app.resize()
	if app.opts.Filename != "" {
		if err := app.check(app.ed.Open(app.opts.Filename)); err != nil {
			return err
		}
	}
	app.ed.SetStatus("%s", HelpMessage)
	if len(app.warnings) > 0 {
		app.ed.SetStatus("%s", app.warnings[0])
	}
	if app.opts.Eval != "" {
		if err := app.check(app.host.CallFunction(app.opts.Eval)); err != nil {
			return err
		}
	}

	if err := app.loop(); !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}

// loop draws, reads one event and dispatches it, until the editor quits
// or a fatal error occurs.
func (app *Application) loop() error {
	for {
		if app.ed.Quitting() {
			return ErrQuit
		}
		if err := app.draw(); err != nil {
			return err
		}
		ev, err := app.ReadEvent()
		if err != nil {
			return err
		}
		if err := app.check(app.ed.HandleEvent(ev)); err != nil {
			return err
		}
	}
}

// check returns nil for errors the user has already seen on the status
// line, such as a failing handler or an unreadable file, and passes
// everything else through as fatal.
func (app *Application) check(err error) error {
	if err == nil {
		return nil
	}
	var serr *lua.ScriptError
	var ferr *editor.FileError
	if errors.As(err, &serr) || errors.As(err, &ferr) {
		app.ed.SetStatus("%v", err)
		app.log.Warn("%v", err)
		return nil
	}
	app.log.Error("fatal: %v", err)
	return err
}

// Refresh draws the current editor state. Together with ReadEvent it makes
// the application the editor's Screen, so prompts redraw and read keys
// through the same terminal.
func (app *Application) Refresh() error {
	return app.draw()
}

// ReadEvent reads one key or idle event from the terminal.
func (app *Application) ReadEvent() (key.Event, error) {
	ev, err := app.term.ReadEvent()
	if err != nil {
		return key.Event{}, NewOperationError("read", "", err)
	}
	return ev, nil
}

func (app *Application) draw() error {
	app.resize()
	if err := app.renderer.Refresh(app.ed, app.term); err != nil {
		return NewOperationError("draw", "", err)
	}
	return nil
}

// resize follows the terminal size. Two rows are kept for the status and
// message lines.
func (app *Application) resize() {
	w, h, err := app.term.Size()
	if err != nil || w < 1 || h < 3 {
		return
	}
	if w == app.ed.Width() && h-2 == app.ed.Height() {
		return
	}
	app.ed.Resize(w, h-2)
	app.log.Debug("resized to %dx%d", w, h)
}
