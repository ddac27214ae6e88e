package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/kilua/internal/engine/buffer"
	"github.com/dshills/kilua/internal/engine/cursor"
	"github.com/dshills/kilua/internal/engine/history"
	"github.com/dshills/kilua/internal/engine/syntax"
)

// Buffer is one text being edited, with its own cursor, mark and undo
// history.
type Buffer struct {
	id       uuid.UUID
	name     string
	filename string

	rows   *buffer.RowStore
	vp     *cursor.Viewport
	undo   *history.Stack
	syntax *syntax.Definition

	// edited is set by the first change after a load and cleared by Open.
	edited bool
}

func newBuffer(name string, cols, rows, tabStop, undoLimit int) *Buffer {
	store := buffer.NewRowStore(buffer.WithTabStop(tabStop))
	store.InsertRow(0, "")
	store.ClearDirty()
	return &Buffer{
		id:   uuid.New(),
		name: name,
		rows: store,
		vp:   cursor.NewViewport(cols, rows),
		undo: history.NewStack(undoLimit),
	}
}

// ID returns the buffer's identity, stable across renames.
func (b *Buffer) ID() uuid.UUID { return b.id }

// Name returns the buffer name.
func (b *Buffer) Name() string { return b.name }

// SetName renames the buffer.
func (b *Buffer) SetName(name string) { b.name = name }

// Filename returns the file the buffer was opened from or saved to.
func (b *Buffer) Filename() string { return b.filename }

// Rows returns the buffer text.
func (b *Buffer) Rows() *buffer.RowStore { return b.rows }

// Viewport returns the buffer's cursor and scroll state.
func (b *Buffer) Viewport() *cursor.Viewport { return b.vp }

// Undo returns the buffer's undo stack.
func (b *Buffer) Undo() *history.Stack { return b.undo }

// Syntax returns the active syntax definition, or nil.
func (b *Buffer) Syntax() *syntax.Definition { return b.syntax }

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool { return b.rows.Dirty() > 0 }

// Pristine reports whether the buffer is a single empty row that was
// never edited.
func (b *Buffer) Pristine() bool {
	return !b.edited && b.rows.Len() == 1 && b.rows.RowLen(0) == 0
}

// setSyntax installs def (nil for none) and rehighlights every row.
func (b *Buffer) setSyntax(def *syntax.Definition) error {
	b.syntax = def
	h := syntax.New(def)
	b.rows.SetHighlighter(h)
	return h.Err()
}
