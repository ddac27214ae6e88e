package editor

import (
	"fmt"
	"time"

	"github.com/dshills/kilua/internal/engine/buffer"
	"github.com/dshills/kilua/internal/engine/cursor"
	"github.com/dshills/kilua/internal/engine/history"
	"github.com/dshills/kilua/internal/engine/syntax"
	"github.com/dshills/kilua/internal/input/key"
)

// Screen is the terminal as seen by interactive operations: it can redraw
// the editor and deliver the next key.
type Screen interface {
	Refresh() error
	ReadEvent() (key.Event, error)
}

// Options configures an Editor.
type Options struct {
	// Width and Height are the size of the text area, excluding the status
	// and message lines.
	Width  int
	Height int

	// TabStop is the tab width used for rendering.
	TabStop int

	// UndoLimit bounds each buffer's undo stack.
	UndoLimit int

	// Registry supplies syntax definitions. Nil uses the built-in set.
	Registry *syntax.Registry
}

// DefaultOptions returns the options used for an 80x24 terminal.
func DefaultOptions() Options {
	return Options{
		Width:     80,
		Height:    22,
		TabStop:   8,
		UndoLimit: history.DefaultMaxEntries,
	}
}

// Editor holds every buffer and the state shared between them: the status
// message, the attached screen and the event sink.
type Editor struct {
	opts     Options
	buffers  *BufferList
	registry *syntax.Registry

	screen Screen
	sink   EventSink

	statusMsg string
	statusAt  time.Time
	quit      bool

	now func() time.Time
}

// New creates an editor with one empty buffer.
func New(opts Options) *Editor {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.TabStop <= 0 {
		opts.TabStop = def.TabStop
	}
	if opts.UndoLimit <= 0 {
		opts.UndoLimit = def.UndoLimit
	}

	e := &Editor{
		opts:     opts,
		registry: opts.Registry,
		sink:     NopSink{},
		now:      time.Now,
	}
	if e.registry == nil {
		e.registry = syntax.DefaultRegistry()
	}
	e.buffers = newBufferList(func(name string) *Buffer {
		return newBuffer(name, e.opts.Width, e.opts.Height, e.opts.TabStop, e.opts.UndoLimit)
	})
	return e
}

// SetScreen attaches the screen used by interactive operations.
func (e *Editor) SetScreen(s Screen) {
	e.screen = s
}

// SetSink sets the receiver of editor events. Nil restores the no-op sink.
func (e *Editor) SetSink(s EventSink) {
	if s == nil {
		s = NopSink{}
	}
	e.sink = s
}

// Registry returns the syntax registry used for file type detection.
func (e *Editor) Registry() *syntax.Registry {
	return e.registry
}

// Buffers returns the buffer list.
func (e *Editor) Buffers() *BufferList {
	return e.buffers
}

// Current returns the current buffer.
func (e *Editor) Current() *Buffer {
	return e.buffers.Current()
}

// Resize changes the text area size of every buffer.
func (e *Editor) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	e.opts.Width, e.opts.Height = width, height
	e.buffers.each(func(b *Buffer) {
		b.vp.Resize(width, height)
	})
}

// Width returns the number of text columns.
func (e *Editor) Width() int {
	return e.opts.Width
}

// Height returns the number of text rows.
func (e *Editor) Height() int {
	return e.opts.Height
}

// SetStatus sets the status message shown below the status line.
func (e *Editor) SetStatus(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusAt = e.now()
}

// StatusMessage returns the status message and when it was set.
func (e *Editor) StatusMessage() (string, time.Time) {
	return e.statusMsg, e.statusAt
}

// Quit asks the main loop to stop.
func (e *Editor) Quit() {
	e.quit = true
}

// Quitting reports whether Quit was called.
func (e *Editor) Quitting() bool {
	return e.quit
}

// Rows returns the text of the current buffer.
func (e *Editor) Rows() *buffer.RowStore {
	return e.Current().rows
}

// Viewport returns the cursor state of the current buffer.
func (e *Editor) Viewport() *cursor.Viewport {
	return e.Current().vp
}

// Filename returns the file name of the current buffer.
func (e *Editor) Filename() string {
	return e.Current().filename
}

// Pristine reports whether the current buffer is untouched and empty.
func (e *Editor) Pristine() bool {
	return e.Current().Pristine()
}

// Dirty reports whether the current buffer has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.Current().Dirty()
}

// refresh redraws through the attached screen.
func (e *Editor) refresh() error {
	if e.screen == nil {
		return ErrNoScreen
	}
	return e.screen.Refresh()
}

// readKey returns the next key, skipping idle ticks.
func (e *Editor) readKey() (key.Event, error) {
	if e.screen == nil {
		return key.Event{}, ErrNoScreen
	}
	for {
		ev, err := e.screen.ReadEvent()
		if err != nil {
			return key.Event{}, err
		}
		if !ev.IsIdle() {
			return ev, nil
		}
	}
}
