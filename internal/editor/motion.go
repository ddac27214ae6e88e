package editor

import (
	"strings"

	"github.com/dshills/kilua/internal/engine/cursor"
)

// Left moves the cursor one character left, wrapping to the end of the
// previous row.
func (e *Editor) Left() { e.move(cursor.Left) }

// Right moves the cursor one character right, wrapping to the start of the
// next row.
func (e *Editor) Right() { e.move(cursor.Right) }

// Up moves the cursor one row up.
func (e *Editor) Up() { e.move(cursor.Up) }

// Down moves the cursor one row down.
func (e *Editor) Down() { e.move(cursor.Down) }

// advance moves right and reports whether the cursor moved.
func (e *Editor) advance() bool {
	x, y := e.Point()
	e.Right()
	nx, ny := e.Point()
	return nx != x || ny != y
}

func (e *Editor) move(dir cursor.Direction) {
	b := e.Current()
	b.vp.Move(b.rows, dir)
}

// StartOfLine moves to column zero.
func (e *Editor) StartOfLine() {
	b := e.Current()
	b.vp.StartOfLine(b.rows)
}

// EndOfLine moves past the last character of the row.
func (e *Editor) EndOfLine() {
	b := e.Current()
	b.vp.EndOfLine(b.rows)
}

// StartOfFile moves to the first character of the buffer.
func (e *Editor) StartOfFile() {
	e.Current().vp.StartOfFile()
}

// EndOfFile moves to the start of the last row.
func (e *Editor) EndOfFile() {
	b := e.Current()
	b.vp.EndOfFile(b.rows)
}

// PageUp moves up one screen.
func (e *Editor) PageUp() {
	b := e.Current()
	b.vp.PageUp(b.rows)
}

// PageDown moves down one screen.
func (e *Editor) PageDown() {
	b := e.Current()
	b.vp.PageDown(b.rows)
}

// Point returns the absolute cursor position, zero-based.
func (e *Editor) Point() (x, y int) {
	p := e.Current().vp.Point()
	return p.X, p.Y
}

// Warp moves the cursor to the zero-based position (x, y), clamped to the
// buffer.
func (e *Editor) Warp(x, y int) {
	b := e.Current()
	b.vp.Warp(b.rows, x, y)
}

// Mark returns the mark, or (-1, -1) when it is unset.
func (e *Editor) Mark() (x, y int) {
	m, ok := e.Current().vp.Mark()
	if !ok {
		return -1, -1
	}
	return m.X, m.Y
}

// SetMark sets the mark. (-1, -1) clears it; other negative positions are
// ignored.
func (e *Editor) SetMark(x, y int) bool {
	return e.Current().vp.SetMark(x, y)
}

// Selection returns the text between the point and the mark, both ends
// included. ok is false when the mark is unset or sits on the point.
func (e *Editor) Selection() (string, bool) {
	b := e.Current()
	points := b.vp.Selection(b.rows)
	if len(points) == 0 {
		return "", false
	}
	var sb strings.Builder
	for _, p := range points {
		sb.WriteRune(b.rows.At(p.Y, p.X))
	}
	return sb.String(), true
}

// CutSelection deletes the selected text and clears the mark.
func (e *Editor) CutSelection() {
	b := e.Current()
	points := b.vp.Selection(b.rows)
	if len(points) == 0 {
		return
	}

	// Right stalls at the end of the last row, where there is nothing
	// left to delete.
	if b.vp.PointAfterMark() {
		n := len(points)
		if !e.advance() {
			n--
		}
		for range n {
			e.Delete()
		}
	} else {
		for range points {
			if e.advance() {
				e.Delete()
			}
		}
	}
	b.vp.ClearMark()
}
