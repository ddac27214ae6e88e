package backend

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/dshills/kilua/internal/renderer"
)

const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	eraseLineRight = "\x1b[0K"
	eraseScreen    = "\x1b[2J"
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// ANSI draws frames as VT100/ANSI escape sequences on a writer, usually a
// terminal in raw mode. Each frame is assembled in memory and written with
// a single Write call.
type ANSI struct {
	mu   sync.Mutex
	out  io.Writer
	size SizeFunc
	buf  bytes.Buffer
}

// NewANSI creates an ANSI backend writing to out.
func NewANSI(out io.Writer, size SizeFunc) *ANSI {
	return &ANSI{out: out, size: size}
}

func (a *ANSI) Init() error { return nil }

// Shutdown clears the screen, homes the cursor and makes it visible.
func (a *ANSI) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = io.WriteString(a.out, ansi.ResetStyle+eraseScreen+cursorHome+showCursor) // best effort on the way out
}

func (a *ANSI) Size() (int, int, error) {
	return a.size()
}

// Draw hides the cursor, homes it, writes every line with its styles and
// an erase-to-end-of-line, then places and shows the cursor.
func (a *ANSI) Draw(f renderer.Frame) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buf.Reset()
	a.buf.WriteString(hideCursor)
	a.buf.WriteString(cursorHome)

	for i, line := range f.Lines {
		for _, run := range line {
			writeRun(&a.buf, run)
		}
		a.buf.WriteString(eraseLineRight)
		if i < len(f.Lines)-1 {
			a.buf.WriteString("\r\n")
		}
	}

	fmt.Fprintf(&a.buf, "\x1b[%d;%dH", f.CursorY+1, f.CursorX+1)
	a.buf.WriteString(showCursor)

	if _, err := a.out.Write(a.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func writeRun(buf *bytes.Buffer, run renderer.Run) {
	if run.Style.IsDefault() {
		buf.WriteString(run.Text)
		return
	}
	buf.WriteString(sgr(run.Style))
	buf.WriteString(run.Text)
	buf.WriteString(ansi.ResetStyle)
}

// sgr returns the select-graphic-rendition sequence for s, or "" when s
// needs none.
func sgr(s renderer.Style) string {
	if s.IsDefault() {
		return ""
	}
	var te ansi.Style
	if !s.Foreground.IsDefault() {
		te = te.ForegroundColor(ansiColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		te = te.BackgroundColor(ansiColor(s.Background))
	}
	if s.Attributes.Has(renderer.AttrBold) {
		te = te.Bold()
	}
	if s.Attributes.Has(renderer.AttrUnderline) {
		te = te.Underline(true)
	}
	if s.Attributes.Has(renderer.AttrReverse) {
		te = te.Reverse(true)
	}
	return te.String()
}

func ansiColor(c renderer.Color) ansi.Color {
	if c.IsBasic() {
		return ansi.BasicColor(c.Index)
	}
	return ansi.IndexedColor(c.Index)
}
