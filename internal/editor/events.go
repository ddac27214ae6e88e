package editor

import (
	"github.com/dshills/kilua/internal/input/key"
)

// EventSink receives editor events. The scripting layer implements it to
// call the user's handlers.
type EventSink interface {
	// OnKey is called with the name of every key read by the main loop.
	OnKey(name string) error
	// OnLoaded is called after a file was opened, even if it did not exist.
	OnLoaded(filename string) error
	// OnSaved is called after a successful save.
	OnSaved(filename string) error
	// OnIdle is called when no key arrived within the read timeout.
	OnIdle() error
}

// NopSink ignores every event.
type NopSink struct{}

func (NopSink) OnKey(string) error    { return nil }
func (NopSink) OnLoaded(string) error { return nil }
func (NopSink) OnSaved(string) error  { return nil }
func (NopSink) OnIdle() error         { return nil }

// HandleEvent dispatches one event from the main loop to the sink: idle
// ticks go to OnIdle and everything else to OnKey. A sink error is shown
// as the status message and returned.
func (e *Editor) HandleEvent(ev key.Event) error {
	var err error
	if ev.IsIdle() {
		err = e.sink.OnIdle()
	} else {
		err = e.sink.OnKey(ev.Name())
	}
	e.report(err)
	return err
}

// report shows err as the status message.
func (e *Editor) report(err error) {
	if err != nil {
		e.SetStatus("%s", err.Error())
	}
}
