package renderer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Run is a stretch of text drawn in one style.
type Run struct {
	Text  string
	Style Style
}

// Line is one screen row as a sequence of runs.
// Consecutive runs never share a style.
type Line []Run

// Text returns the line's characters without styling.
func (l Line) Text() string {
	var sb strings.Builder
	for _, r := range l {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, r := range l {
		w += runewidth.StringWidth(r.Text)
	}
	return w
}

func (l *Line) add(s string, style Style) {
	if s == "" {
		return
	}
	if n := len(*l); n > 0 && (*l)[n-1].Style.Equals(style) {
		(*l)[n-1].Text += s
		return
	}
	*l = append(*l, Run{Text: s, Style: style})
}

// Frame is one complete screen: text rows, the status line, the message
// line and the hardware cursor position.
type Frame struct {
	Width  int
	Height int
	Lines  []Line

	CursorX int
	CursorY int
}

// Text returns the frame's lines without styling, one per element.
func (f Frame) Text() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Text()
	}
	return out
}
