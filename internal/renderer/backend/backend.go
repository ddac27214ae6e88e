// Package backend puts composed frames on a terminal.
package backend

import (
	"errors"
	"sync"

	"github.com/dshills/kilua/internal/input/key"
	"github.com/dshills/kilua/internal/renderer"
)

// ErrClosed is returned by a backend used after Shutdown.
var ErrClosed = errors.New("backend closed")

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init prepares the display. Must be called before any other method.
	Init() error

	// Shutdown restores the display. It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int, err error)

	// Draw replaces the screen contents with f.
	Draw(f renderer.Frame) error
}

// EventSource yields key events, or an idle event when no key arrived
// within the read timeout.
type EventSource interface {
	ReadEvent() (key.Event, error)
}

// NullBackend is an in-memory backend for testing.
// It records every frame and replays queued key events.
type NullBackend struct {
	mu      sync.Mutex
	width   int
	height  int
	frames  []renderer.Frame
	events  []key.Event
	drawErr error
	closed  bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{width: width, height: height}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

func (b *NullBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height, nil
}

func (b *NullBackend) Draw(f renderer.Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if b.drawErr != nil {
		return b.drawErr
	}
	b.frames = append(b.frames, f)
	return nil
}

// ReadEvent returns the next queued event, or an idle event when the
// queue is empty.
func (b *NullBackend) ReadEvent() (key.Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return key.Idle(), nil
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

// Queue appends events to be returned by ReadEvent.
func (b *NullBackend) Queue(events ...key.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

// Pending returns the number of queued events not yet read.
func (b *NullBackend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Frames returns the frames drawn so far.
func (b *NullBackend) Frames() []renderer.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]renderer.Frame(nil), b.frames...)
}

// LastFrame returns the most recent frame and whether one was drawn.
func (b *NullBackend) LastFrame() (renderer.Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return renderer.Frame{}, false
	}
	return b.frames[len(b.frames)-1], true
}

// FailDraws makes every following Draw return err. Nil clears it.
func (b *NullBackend) FailDraws(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawErr = err
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
	b.height = height
}
