package cursor

import (
	"fmt"
)

// Lines is the row geometry the viewport moves over.
type Lines interface {
	// Len returns the number of rows.
	Len() int
	// RowLen returns the number of characters in row i.
	RowLen(i int) int
}

// Direction is a single step of cursor movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Point is an absolute buffer position.
type Point struct {
	X, Y int
}

// Before reports whether p comes before q in reading order.
func (p Point) Before(q Point) bool {
	return p.Y < q.Y || (p.Y == q.Y && p.X < q.X)
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// noMark is the mark value meaning "unset".
var noMark = Point{X: -1, Y: -1}

// State is the cursor and scroll state of a viewport.
type State struct {
	CX, CY         int
	RowOff, ColOff int
}

// Viewport is the cursor and scroll state of a window onto a buffer.
type Viewport struct {
	State
	rows int
	cols int
	mark Point
}

// NewViewport creates a viewport of the given text area size with the
// cursor at the origin and no mark.
func NewViewport(cols, rows int) *Viewport {
	v := &Viewport{mark: noMark}
	v.setSize(cols, rows)
	return v
}

func (v *Viewport) setSize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	v.cols, v.rows = cols, rows
}

// Width returns the number of text columns.
func (v *Viewport) Width() int { return v.cols }

// Height returns the number of text rows.
func (v *Viewport) Height() int { return v.rows }

// Point returns the absolute cursor position.
func (v *Viewport) Point() Point {
	return Point{X: v.ColOff + v.CX, Y: v.RowOff + v.CY}
}

// Save returns the current cursor and scroll state.
func (v *Viewport) Save() State {
	return v.State
}

// Restore resets the cursor and scroll state to s.
func (v *Viewport) Restore(s State) {
	v.State = s
}

// Reset moves the cursor to the origin and clears the mark.
func (v *Viewport) Reset() {
	v.State = State{}
	v.mark = noMark
}

// Resize changes the text area size and scrolls so the cursor stays on
// screen.
func (v *Viewport) Resize(cols, rows int) {
	v.setSize(cols, rows)
	if v.CY >= v.rows {
		v.RowOff += v.CY - v.rows + 1
		v.CY = v.rows - 1
	}
	if v.CX >= v.cols {
		v.ColOff += v.CX - v.cols + 1
		v.CX = v.cols - 1
	}
}

// Move moves the cursor one step in dir and then clamps the column to the
// length of the row it ends up on.
func (v *Viewport) Move(lines Lines, dir Direction) {
	p := v.Point()
	numRows := lines.Len()
	onRow := p.Y < numRows

	switch dir {
	case Left:
		switch {
		case v.CX > 0:
			v.CX--
		case v.ColOff > 0:
			v.ColOff--
		case p.Y > 0:
			if v.CY == 0 {
				v.RowOff--
			} else {
				v.CY--
			}
			v.CX = lines.RowLen(p.Y - 1)
			if v.CX > v.cols-1 {
				v.ColOff = v.CX - v.cols + 1
				v.CX = v.cols - 1
			}
		}

	case Right:
		if !onRow {
			break
		}
		rowLen := lines.RowLen(p.Y)
		switch {
		case p.X < rowLen:
			if v.CX == v.cols-1 {
				v.ColOff++
			} else {
				v.CX++
			}
		case p.Y < numRows-1:
			v.CX, v.ColOff = 0, 0
			v.down()
		}

	case Up:
		if v.CY == 0 {
			if v.RowOff > 0 {
				v.RowOff--
			}
		} else {
			v.CY--
		}

	case Down:
		if p.Y < numRows-1 {
			v.down()
		}
	}

	v.clampColumn(lines)
}

func (v *Viewport) down() {
	if v.CY == v.rows-1 {
		v.RowOff++
	} else {
		v.CY++
	}
}

// clampColumn pulls the cursor back to the end of a short row.
func (v *Viewport) clampColumn(lines Lines) {
	p := v.Point()
	rowLen := 0
	if p.Y < lines.Len() {
		rowLen = lines.RowLen(p.Y)
	}
	if p.X > rowLen {
		v.CX -= p.X - rowLen
		if v.CX < 0 {
			v.ColOff += v.CX
			v.CX = 0
		}
	}
}

// Warp moves the cursor to (x, y) by stepping from the origin, so the
// result is scrolled and clamped exactly as interactive movement would be.
// Negative coordinates count as zero and x stops at the end of the row.
func (v *Viewport) Warp(lines Lines, x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	v.State = State{}

	for i := 0; i < y; i++ {
		before := v.Point()
		v.Move(lines, Down)
		if v.Point() == before {
			break
		}
	}
	row := v.Point().Y
	for i := 0; i < x && v.Point().X < lines.RowLen(row); i++ {
		v.Move(lines, Right)
	}
}

// StartOfLine moves the cursor to column zero of the current row.
func (v *Viewport) StartOfLine(lines Lines) {
	for x := v.Point().X; x > 0; x-- {
		v.Move(lines, Left)
	}
}

// EndOfLine moves the cursor just past the last character of the row.
func (v *Viewport) EndOfLine(lines Lines) {
	p := v.Point()
	if p.Y >= lines.Len() {
		return
	}
	for x := p.X; x < lines.RowLen(p.Y); x++ {
		v.Move(lines, Right)
	}
}

// StartOfFile moves the cursor to the origin.
func (v *Viewport) StartOfFile() {
	v.State = State{}
}

// EndOfFile moves the cursor to the start of the last row.
func (v *Viewport) EndOfFile(lines Lines) {
	v.Warp(lines, 0, lines.Len()-1)
}

// PageUp moves the cursor up one screen less one row.
func (v *Viewport) PageUp(lines Lines) {
	for i := 0; i < v.rows-1; i++ {
		v.Move(lines, Up)
	}
}

// PageDown moves the cursor down one screen less one row.
func (v *Viewport) PageDown(lines Lines) {
	for i := 0; i < v.rows-1; i++ {
		v.Move(lines, Down)
	}
}

// ScrollTo places absolute position (x, y) at the top of the screen.
func (v *Viewport) ScrollTo(x, y int) {
	v.RowOff, v.CY = y, 0
	v.ColOff, v.CX = 0, x
	if v.CX > v.cols-1 {
		v.ColOff = v.CX - v.cols + 1
		v.CX = v.cols - 1
	}
}
