package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kilua/internal/engine/buffer"
	"github.com/dshills/kilua/internal/engine/cursor"
	"github.com/dshills/kilua/internal/engine/syntax"
)

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// Options configures the renderer.
type Options struct {
	// MessageTimeout hides status messages older than this.
	MessageTimeout time.Duration

	// Version is shown in the welcome banner.
	Version string

	// Theme maps highlight tags to styles. Nil uses DefaultTheme.
	Theme *Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		MessageTimeout: DefaultMessageTimeout,
		Version:        "dev",
	}
}

// Renderer composes frames from editor state.
// A Renderer holds no per-frame state; every call to Compose produces a
// complete frame.
type Renderer struct {
	opts  Options
	theme *Theme
	now   func() time.Time
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.MessageTimeout <= 0 {
		opts.MessageTimeout = DefaultMessageTimeout
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		opts:  opts,
		theme: theme,
		now:   time.Now,
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// SetMessageTimeout changes how long status messages stay visible.
func (r *Renderer) SetMessageTimeout(d time.Duration) {
	if d > 0 {
		r.opts.MessageTimeout = d
	}
}

// Refresh composes a frame from m and hands it to d.
func (r *Renderer) Refresh(m Model, d Drawer) error {
	return d.Draw(r.Compose(m))
}

// Compose builds the frame for m: one line per viewport row, then the
// status line and the message line.
func (r *Renderer) Compose(m Model) Frame {
	vp := m.Viewport()
	rows := m.Rows()
	width, height := vp.Width(), vp.Height()

	f := Frame{
		Width:  width,
		Height: height + 2,
		Lines:  make([]Line, 0, height+2),
	}

	banner := r.banner()
	bannerTop := height / 3
	pristine := m.Pristine()

	for y := 0; y < height; y++ {
		filerow := vp.RowOff + y
		if filerow >= rows.Len() {
			if pristine && y >= bannerTop && y-bannerTop < len(banner) {
				f.Lines = append(f.Lines, r.bannerLine(banner[y-bannerTop], width))
			} else {
				f.Lines = append(f.Lines, Line{{Text: "~", Style: r.theme.Normal}})
			}
			continue
		}
		f.Lines = append(f.Lines, r.textLine(rows, vp, filerow))
	}

	f.Lines = append(f.Lines, r.statusLine(m))
	f.Lines = append(f.Lines, r.messageLine(m, width))

	f.CursorY = vp.CY
	f.CursorX = r.cursorColumn(rows, vp)
	return f
}

func (r *Renderer) banner() []string {
	return []string{
		"kilua editor -- version " + r.opts.Version,
		"",
		"Lua scripting enabled.",
		"Undo support enabled.",
	}
}

// bannerLine centres text, with the "~" filler taking the first column of
// the padding.
func (r *Renderer) bannerLine(text string, width int) Line {
	if text == "" {
		return Line{{Text: "~", Style: r.theme.Normal}}
	}
	text = runewidth.Truncate(text, width, "")
	padding := (width - runewidth.StringWidth(text)) / 2

	var sb strings.Builder
	if padding > 0 {
		sb.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		sb.WriteByte(' ')
	}
	sb.WriteString(text)
	return Line{{Text: sb.String(), Style: r.theme.Normal}}
}

// textLine draws the visible slice of a row's rendered text.
func (r *Renderer) textLine(rows *buffer.RowStore, vp *cursor.Viewport, filerow int) Line {
	row := rows.Row(filerow)
	rendered := row.Rendered()
	tags := row.Highlight()
	selStart, selEnd := r.selectedColumns(rows, vp, filerow)

	var line Line
	end := min(len(rendered), vp.ColOff+vp.Width())
	for i := vp.ColOff; i < end; i++ {
		ch := rendered[i]
		tag := syntax.Normal
		if i < len(tags) {
			tag = tags[i]
		}

		style := r.theme.StyleForTag(tag)
		if !syntax.IsPrintable(ch) {
			style = r.theme.NonPrintable
			ch = Placeholder(ch)
		}
		if i >= selStart && i < selEnd {
			style = style.Merge(r.theme.Selection)
		}
		line.add(string(ch), style)
	}
	return line
}

// selectedColumns returns the half-open range of rendered columns of
// filerow that fall inside the selection. The range is empty when there is
// no selection on the row.
func (r *Renderer) selectedColumns(rows *buffer.RowStore, vp *cursor.Viewport, filerow int) (int, int) {
	start, end, ok := vp.Region()
	if !ok || filerow < start.Y || filerow > end.Y {
		return 0, 0
	}

	row := rows.Row(filerow)
	tabs := rows.Tabs()
	from := 0
	if filerow == start.Y {
		from = tabs.Column(row.Raw(), start.X)
	}
	to := len(row.Rendered()) + 1
	if filerow == end.Y {
		to = tabs.Column(row.Raw(), end.X+1)
	}
	return from, to
}

// statusLine formats "name - N lines (modified)" and, when it fits exactly
// at the right edge, "Col:x Row:y/N". The result is padded to the width.
func (r *Renderer) statusLine(m Model) Line {
	vp := m.Viewport()
	rows := m.Rows()
	width := vp.Width()

	name := m.Filename()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if rows.Dirty() > 0 {
		modified = "(modified)"
	}

	left := fmt.Sprintf("%.20s - %d lines %s", name, rows.Len(), modified)
	right := fmt.Sprintf("Col:%d Row:%d/%d", vp.ColOff+vp.CX+1, vp.RowOff+vp.CY+1, rows.Len())

	left = runewidth.Truncate(left, width, "")
	lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right)

	var text string
	if lw+rw <= width {
		text = left + strings.Repeat(" ", width-lw-rw) + right
	} else {
		text = runewidth.FillRight(left, width)
	}
	return Line{{Text: text, Style: r.theme.Status}}
}

func (r *Renderer) messageLine(m Model, width int) Line {
	msg, at := m.StatusMessage()
	if msg == "" || r.now().Sub(at) >= r.opts.MessageTimeout {
		return Line{}
	}
	return Line{{Text: runewidth.Truncate(msg, width, ""), Style: r.theme.Normal}}
}

// cursorColumn maps the cursor's raw column to the rendered column it
// starts at, relative to the first drawn column.
func (r *Renderer) cursorColumn(rows *buffer.RowStore, vp *cursor.Viewport) int {
	x := vp.CX
	if row := rows.Row(vp.RowOff + vp.CY); row != nil {
		x = rows.Tabs().Column(row.Raw(), vp.ColOff+vp.CX) - vp.ColOff
	}
	return max(0, min(x, vp.Width()-1))
}
