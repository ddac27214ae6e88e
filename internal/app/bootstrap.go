package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/kilua/internal/config/watcher"
	"github.com/dshills/kilua/internal/editor"
	"github.com/dshills/kilua/internal/engine/syntax"
	"github.com/dshills/kilua/internal/plugin/lua"
	"github.com/dshills/kilua/internal/renderer"
)

// bootstrapper initializes components in dependency order and tears the
// initialized ones down again if a later step fails.
type bootstrapper struct {
	app       *Application
	initOrder []string
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{app: app, initOrder: make([]string, 0, 4)}
}

func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"editor", b.initEditor},
		{"renderer", b.initRenderer},
		{"scripting", b.initScripting},
		{"watcher", b.initWatcher},
		{"scripts", b.initScripts},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			b.app.log.WithComponent(step.name).Error("startup failed: %v", err)
			b.cleanup()
			return err
		}
		b.initOrder = append(b.initOrder, step.name)
	}
	return nil
}

// initEditor builds the syntax registry and the editor, sized from the
// terminal when it can already report a size.
func (b *bootstrapper) initEditor() error {
	app := b.app
	registry := syntax.DefaultRegistry()
	if app.cfg.SyntaxFile != "" {
		if err := registry.LoadFile(app.cfg.SyntaxFile); err != nil {
			app.warn("syntax", "%v", err)
		}
	}

	opts := editor.Options{
		TabStop:   app.cfg.TabStop,
		UndoLimit: app.cfg.UndoLimit,
		Registry:  registry,
	}
	if w, h, err := app.term.Size(); err == nil && w > 0 && h > 2 {
		opts.Width, opts.Height = w, h-2
	}
	app.ed = editor.New(opts)
	app.ed.SetScreen(app)
	return nil
}

func (b *bootstrapper) initRenderer() error {
	opts := renderer.DefaultOptions()
	opts.MessageTimeout = b.app.cfg.Timeout()
	opts.Version = b.app.opts.Version
	b.app.renderer = renderer.New(opts)
	return nil
}

// initScripting creates the Lua host. print() output goes to the status
// line and the log.
func (b *bootstrapper) initScripting() error {
	app := b.app
	luaLog := app.log.WithComponent("lua")
	host, err := lua.NewHost(app.ed, lua.WithPrint(func(s string) {
		app.ed.SetStatus("%s", s)
		luaLog.Info("print: %s", s)
	}))
	if err != nil {
		return &InitError{Component: "lua", Err: err}
	}
	app.host = host
	app.ed.SetSink(sink{app: app})
	return nil
}

// initWatcher starts the file watcher when the config asks for one. A
// watcher that cannot start only costs the change notifications.
func (b *bootstrapper) initWatcher() error {
	if !b.app.cfg.Watch {
		return nil
	}
	w, err := watcher.New()
	if err != nil {
		b.app.warn("watcher", "file watching disabled: %v", err)
		return nil
	}
	b.app.watcher = w
	return nil
}

// initScripts loads ~/.kilo.lua, ./kilo.lua, the config's scripts and the
// extra scripts, skipping missing files. A script that fails to load is
// fatal, and so is loading none at all.
func (b *bootstrapper) initScripts() error {
	app := b.app
	log := app.log.WithComponent("scripts")

	for _, path := range app.scriptCandidates() {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("no init script at %s", path)
				continue
			}
			return NewOperationError("load", path, err)
		}
		if err := app.host.LoadFile(path); err != nil {
			return NewOperationError("load", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		app.scripts = append(app.scripts, abs)
		app.watch(abs)
		log.Info("loaded %s", abs)
	}

	if len(app.scripts) == 0 {
		return ErrNoInitScript
	}
	return nil
}

// cleanup tears down initialized components in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "watcher":
			if b.app.watcher != nil {
				_ = b.app.watcher.Close()
				b.app.watcher = nil
			}
		case "scripting":
			if b.app.host != nil {
				_ = b.app.host.Close()
				b.app.host = nil
			}
		}
	}
}

func (app *Application) scriptCandidates() []string {
	var paths []string
	if app.opts.HomeDir != "" {
		paths = append(paths, filepath.Join(app.opts.HomeDir, UserScript))
	}
	if app.opts.WorkDir != "" {
		paths = append(paths, filepath.Join(app.opts.WorkDir, ProjectScript))
	}
	paths = append(paths, app.cfg.Scripts...)
	paths = append(paths, app.opts.Scripts...)
	return paths
}

// warn logs a non-fatal startup problem and keeps it for the status line.
func (app *Application) warn(component, format string, args ...any) {
	app.log.WithComponent(component).Warn(format, args...)
	app.warnings = append(app.warnings, fmt.Sprintf(format, args...))
}
