package backend

import (
	"errors"
	"testing"

	"github.com/dshills/kilua/internal/input/key"
	"github.com/dshills/kilua/internal/renderer"
)

func textFrame(lines ...string) renderer.Frame {
	f := renderer.Frame{Width: 10, Height: len(lines)}
	for _, l := range lines {
		f.Lines = append(f.Lines, renderer.Line{{Text: l, Style: renderer.DefaultStyle()}})
	}
	return f
}

func TestNullBackendSize(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h, err := b.Size()
	if err != nil || w != 80 || h != 24 {
		t.Errorf("Size() = (%d, %d, %v), want (80, 24, nil)", w, h, err)
	}

	b.Resize(100, 30)
	w, h, _ = b.Size()
	if w != 100 || h != 30 {
		t.Errorf("after Resize, Size() = (%d, %d), want (100, 30)", w, h)
	}
}

func TestNullBackendRecordsFrames(t *testing.T) {
	b := NewNullBackend(10, 2)
	if _, ok := b.LastFrame(); ok {
		t.Error("LastFrame should report no frame before Draw")
	}

	if err := b.Draw(textFrame("one")); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := b.Draw(textFrame("two")); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if n := len(b.Frames()); n != 2 {
		t.Errorf("len(Frames()) = %d, want 2", n)
	}
	last, ok := b.LastFrame()
	if !ok || last.Lines[0].Text() != "two" {
		t.Errorf("LastFrame() = %v, %v", last.Text(), ok)
	}
}

func TestNullBackendDrawErrors(t *testing.T) {
	b := NewNullBackend(10, 2)
	boom := errors.New("boom")

	b.FailDraws(boom)
	if err := b.Draw(textFrame("x")); !errors.Is(err, boom) {
		t.Errorf("Draw error = %v, want %v", err, boom)
	}
	b.FailDraws(nil)
	if err := b.Draw(textFrame("x")); err != nil {
		t.Errorf("Draw after clearing failure: %v", err)
	}

	b.Shutdown()
	if err := b.Draw(textFrame("x")); !errors.Is(err, ErrClosed) {
		t.Errorf("Draw after Shutdown = %v, want ErrClosed", err)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Queue(key.NewRuneEvent('a', key.ModNone), key.NewCtrlEvent('q'))

	if n := b.Pending(); n != 2 {
		t.Errorf("Pending() = %d, want 2", n)
	}

	want := []string{"a", "Ctrl+Q", ""}
	for i, w := range want {
		ev, err := b.ReadEvent()
		if err != nil {
			t.Fatalf("ReadEvent %d: %v", i, err)
		}
		if w == "" {
			if !ev.IsIdle() {
				t.Errorf("event %d = %v, want idle", i, ev)
			}
			continue
		}
		if got := ev.Name(); got != w {
			t.Errorf("event %d = %q, want %q", i, got, w)
		}
	}
}
