package editor

import (
	"errors"

	"github.com/dshills/kilua/internal/engine/history"
)

// Insert inserts text at the cursor, one character at a time, as if it
// had been typed. A "\n" splits the row.
func (e *Editor) Insert(text string) {
	for _, ch := range text {
		e.insertRune(ch)
	}
}

func (e *Editor) insertRune(ch rune) {
	if ch == '\n' {
		e.insertNewline()
		return
	}

	b := e.Current()
	vp := b.vp
	p := vp.Point()
	if p.Y > b.rows.Len() {
		return
	}

	b.rows.InsertChar(p.Y, p.X, ch)
	if vp.CX == vp.Width()-1 {
		vp.ColOff++
	} else {
		vp.CX++
	}
	b.undo.Push(history.NewDelete(p.X+1, p.Y))
	b.edited = true
}

// insertNewline splits the row at the cursor and moves to the start of
// the new row.
func (e *Editor) insertNewline() {
	b := e.Current()
	vp := b.vp
	p := vp.Point()
	if p.Y > b.rows.Len() {
		return
	}

	b.rows.SplitRow(p.Y, p.X)
	if vp.CY == vp.Height()-1 {
		vp.RowOff++
	} else {
		vp.CY++
	}
	vp.CX, vp.ColOff = 0, 0
	b.undo.Push(history.NewDelete(0, p.Y+1))
	b.edited = true
}

// Delete removes the character before the cursor. At the start of a row
// it joins the row onto the previous one. It does nothing at the start of
// the buffer.
func (e *Editor) Delete() {
	b := e.Current()
	vp := b.vp
	p := vp.Point()
	if p.Y >= b.rows.Len() || (p.X == 0 && p.Y == 0) {
		return
	}

	if p.X == 0 {
		prevLen, ok := b.rows.JoinWithPrevious(p.Y)
		if !ok {
			return
		}
		if vp.CY == 0 {
			vp.RowOff--
		} else {
			vp.CY--
		}
		vp.CX, vp.ColOff = prevLen, 0
		if vp.CX >= vp.Width() {
			vp.ColOff = prevLen - (vp.Width() - 1)
			vp.CX = vp.Width() - 1
		}
		b.undo.Push(history.NewInsert('\n', prevLen, p.Y-1))
		b.edited = true
		return
	}

	ch := b.rows.At(p.Y, p.X-1)
	if !b.rows.DeleteChar(p.Y, p.X-1) {
		return
	}
	if vp.CX == 0 && vp.ColOff > 0 {
		vp.ColOff--
	} else {
		vp.CX--
	}
	b.undo.Push(history.NewInsert(ch, p.X-1, p.Y))
	b.edited = true
}

// Kill removes the current row: its characters, and then the row itself by
// joining the following row onto it.
func (e *Editor) Kill() {
	b := e.Current()
	b.vp.EndOfLine(b.rows)

	p := b.vp.Point()
	for n := b.rows.RowLen(p.Y); n > 0; n-- {
		e.Delete()
	}
	e.Right()
	e.Delete()
}

// At returns the character under the cursor, or "\n" past the end of the
// row.
func (e *Editor) At() string {
	b := e.Current()
	p := b.vp.Point()
	return string(b.rows.At(p.Y, p.X))
}

// Line returns the text of the current row from the cursor onwards. ok is
// false when the cursor is not on a row.
func (e *Editor) Line() (string, bool) {
	b := e.Current()
	p := b.vp.Point()
	row := b.rows.Row(p.Y)
	if row == nil {
		return "", false
	}
	raw := row.Raw()
	if p.X >= len(raw) {
		return "", true
	}
	return string(raw[p.X:]), true
}

// Undo reverts the most recent edit of the current buffer. The cursor is
// left where the edit happened.
func (e *Editor) Undo() error {
	b := e.Current()
	err := b.undo.Undo(replayer{e})
	if errors.Is(err, history.ErrNothingToUndo) {
		e.SetStatus("Undo stack is empty!")
	}
	return err
}

// replayer applies undo records through the normal edit path.
type replayer struct {
	e *Editor
}

func (r replayer) Warp(x, y int) { r.e.Warp(x, y) }
func (r replayer) Insert(ch rune) { r.e.insertRune(ch) }
func (r replayer) Delete()        { r.e.Delete() }
