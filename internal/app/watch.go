package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dshills/kilua/internal/config/watcher"
	"github.com/dshills/kilua/internal/editor"
)

// ownWriteWindow is how close to one of the editor's own saves a change
// notification must be to be attributed to that save.
const ownWriteWindow = 2 * time.Second

// sink forwards editor events to the Lua host. On the way it keeps the
// file watcher informed about the files being edited and drains its
// notifications on idle ticks.
type sink struct {
	app *Application
}

var _ editor.EventSink = sink{}

func (s sink) OnKey(name string) error {
	return s.app.host.OnKey(name)
}

func (s sink) OnLoaded(filename string) error {
	s.app.watch(filename)
	return s.app.host.OnLoaded(filename)
}

func (s sink) OnSaved(filename string) error {
	if abs, err := filepath.Abs(filename); err == nil {
		s.app.saved[abs] = time.Now()
	}
	s.app.watch(filename)
	return s.app.host.OnSaved(filename)
}

func (s sink) OnIdle() error {
	if err := s.app.pollWatcher(); err != nil {
		return err
	}
	return s.app.host.OnIdle()
}

// watch adds path to the watcher, if there is one.
func (app *Application) watch(path string) {
	if app.watcher == nil || path == "" {
		return
	}
	if err := app.watcher.Watch(path); err != nil {
		app.log.WithComponent("watcher").Warn("cannot watch %s: %v", path, err)
	}
}

// pollWatcher handles the change notifications queued since the last idle
// tick. A changed init script is reloaded. A change to a file open in a
// buffer is reported on the status line unless the editor wrote it itself.
func (app *Application) pollWatcher() error {
	if app.watcher == nil {
		return nil
	}
	log := app.log.WithComponent("watcher")

drainErrors:
	for {
		select {
		case err, ok := <-app.watcher.Errors():
			if !ok {
				break drainErrors
			}
			log.Warn("%v", err)
		default:
			break drainErrors
		}
	}

	for _, ev := range app.watcher.Drain() {
		log.Debug("%s %s", ev.Op, ev.Path)
		switch {
		case slices.Contains(app.scripts, ev.Path):
			if err := app.reloadScript(ev); err != nil {
				return err
			}
		case app.isOpen(ev.Path):
			if at, ok := app.saved[ev.Path]; ok && absDuration(ev.Time.Sub(at)) < ownWriteWindow {
				continue
			}
			if !exists(ev.Path) {
				app.ed.SetStatus("%s was removed from disk", filepath.Base(ev.Path))
				continue
			}
			app.ed.SetStatus("%s changed on disk", filepath.Base(ev.Path))
		}
	}
	return nil
}

// reloadScript runs a changed init script again. A Lua error is shown and
// logged; only errors that end the session are returned.
func (app *Application) reloadScript(ev watcher.Event) error {
	name := filepath.Base(ev.Path)
	if !exists(ev.Path) {
		app.ed.SetStatus("%s was removed from disk", name)
		return nil
	}
	if err := app.host.LoadFile(ev.Path); err != nil {
		return app.check(err)
	}
	app.log.WithComponent("scripts").Info("reloaded %s", ev.Path)
	app.ed.SetStatus("Reloaded %s", name)
	return nil
}

// isOpen reports whether path is the file of any buffer.
func (app *Application) isOpen(path string) bool {
	list := app.ed.Buffers()
	for i := 0; i < list.Len(); i++ {
		name := list.At(i).Filename()
		if name == "" {
			continue
		}
		if abs, err := filepath.Abs(name); err == nil && abs == path {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
