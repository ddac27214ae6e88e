package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/kilua/internal/input/key"
	"github.com/dshills/kilua/internal/renderer"
)

// ReadTimeout is how long ReadEvent waits before reporting idle.
const ReadTimeout = 100 * time.Millisecond

// Terminal implements Backend and EventSource using tcell. tcell owns the
// terminal, so raw mode and key decoding are its business.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	started bool
	closed  bool
	timeout time.Duration
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 64),
		done:    make(chan struct{}),
		timeout: ReadTimeout,
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.started = true
	go t.poll()
	return nil
}

// poll forwards screen events to the events channel until the screen is
// finalized.
func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || !t.started {
		t.closed = true
		return
	}
	t.closed = true
	close(t.done)
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return w, h, nil
}

// Draw clears the screen, sets every run's cells and shows the result.
func (t *Terminal) Draw(f renderer.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	t.screen.Clear()
	for y, line := range f.Lines {
		x := 0
		for _, run := range line {
			style := convertStyle(run.Style)
			for _, r := range run.Text {
				t.screen.SetContent(x, y, r, nil, style)
				x += runewidth.RuneWidth(r)
			}
		}
	}
	t.screen.ShowCursor(f.CursorX, f.CursorY)
	t.screen.Show()
	return nil
}

// ReadEvent waits up to the read timeout for a key. A timeout, a resize or
// any other non-key event is reported as idle.
func (t *Terminal) ReadEvent() (key.Event, error) {
	select {
	case ev := <-t.events:
		switch e := ev.(type) {
		case *tcell.EventKey:
			return convertKey(e), nil
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		}
		return key.Idle(), nil
	case <-time.After(t.timeout):
		return key.Idle(), nil
	case <-t.done:
		return key.Idle(), ErrClosed
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s renderer.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.PaletteColor(int(s.Foreground.Index)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.PaletteColor(int(s.Background.Index)))
	}

	if s.Attributes.Has(renderer.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(renderer.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(renderer.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertKey converts a tcell key event to our key event. Control
// characters that tcell reports as Ctrl keys keep their Ctrl+letter
// identity, matching what the raw decoder produces for the same bytes.
func convertKey(e *tcell.EventKey) key.Event {
	var mods key.Modifier
	if e.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		// tcell reports both DEL and BS as KeyBackspace.
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyCtrlSpace:
		return key.FromByte(0)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewCtrlEvent('a' + rune(k-tcell.KeyCtrlA))
		}
		return key.Idle()
	}
}
