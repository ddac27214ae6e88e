// Package app wires the editor, the renderer, the terminal and the Lua host
// together and runs the main loop.
//
// The loop is single-threaded: it draws a frame, waits up to a tenth of a
// second for a key and hands the key (or an idle tick) to the editor, which
// forwards it to the user's Lua handlers. File watcher notifications are
// collected on idle ticks.
package app

import (
	"time"

	"github.com/dshills/kilua/internal/config"
	"github.com/dshills/kilua/internal/config/watcher"
	"github.com/dshills/kilua/internal/editor"
	"github.com/dshills/kilua/internal/plugin/lua"
	"github.com/dshills/kilua/internal/renderer"
	"github.com/dshills/kilua/internal/renderer/backend"
)

// HelpMessage is shown on the status line at startup.
const HelpMessage = "HELP: ^o = open | ^s = save | ^q = quit | ^f = find | ^l = eval"

// Names of the init scripts looked up in the home and working directories.
const (
	UserScript    = ".kilo.lua"
	ProjectScript = "kilo.lua"
)

// Terminal is a display that also delivers key events.
type Terminal interface {
	backend.Backend
	backend.EventSource
}

// Options configures the application.
type Options struct {
	// Config holds the loaded settings. Nil uses config.Default().
	Config *config.Config

	// Version is shown in the welcome banner.
	Version string

	// Filename is opened before the loop starts. Empty starts with an
	// unnamed buffer.
	Filename string

	// Eval names a global Lua function called once after startup.
	Eval string

	// Scripts are extra init scripts, loaded after the config's scripts.
	Scripts []string

	// HomeDir and WorkDir are searched for .kilo.lua and kilo.lua. Empty
	// skips the lookup.
	HomeDir string
	WorkDir string

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger
}

// Application is the central coordinator for all kilua components.
type Application struct {
	opts Options
	cfg  *config.Config
	log  *Logger

	ed       *editor.Editor
	host     *lua.Host
	renderer *renderer.Renderer
	term     Terminal
	watcher  *watcher.Watcher

	// scripts are the absolute paths of the loaded init scripts.
	scripts []string
	// warnings collects non-fatal startup problems for the status line.
	warnings []string
	// saved records when each file was last written by the editor.
	saved map[string]time.Time

	running bool
}

// New builds the application on term and loads the init scripts. The
// terminal is not touched until Run.
func New(opts Options, term Terminal) (*Application, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	app := &Application{
		opts:  opts,
		cfg:   opts.Config,
		log:   opts.Logger,
		term:  term,
		saved: make(map[string]time.Time),
	}
	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Close releases the Lua state and the file watcher.
func (app *Application) Close() error {
	var errs ErrorList
	if app.watcher != nil {
		errs.Add(app.watcher.Close())
		app.watcher = nil
	}
	if app.host != nil {
		errs.Add(app.host.Close())
		app.host = nil
	}
	return errs.AsError()
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.ed
}

// Host returns the Lua host.
func (app *Application) Host() *lua.Host {
	return app.host
}

// Config returns the settings in use.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Scripts returns the init scripts that were loaded, in load order.
func (app *Application) Scripts() []string {
	return append([]string(nil), app.scripts...)
}

// IsRunning reports whether Run is executing.
func (app *Application) IsRunning() bool {
	return app.running
}
