package buffer

import (
	"github.com/dshills/kilua/internal/engine/syntax"
)

// Row is one line of text. Rows are owned by a RowStore; the slices returned
// by the accessors must not be modified.
type Row struct {
	index     int
	raw       []rune
	rendered  []rune
	highlight []syntax.Tag
	open      bool
}

// Index returns the row's position in its store.
func (r *Row) Index() int { return r.index }

// Raw returns the characters of the row.
func (r *Row) Raw() []rune { return r.raw }

// Len returns the number of raw characters.
func (r *Row) Len() int { return len(r.raw) }

// Rendered returns the row with tabs expanded.
func (r *Row) Rendered() []rune { return r.rendered }

// Highlight returns the tag of each rendered character.
func (r *Row) Highlight() []syntax.Tag { return r.highlight }

// OpenComment reports whether the row ends inside a block comment.
func (r *Row) OpenComment() bool { return r.open }

// String returns the raw text of the row.
func (r *Row) String() string { return string(r.raw) }

// At returns the character at col, or '\n' past the end of the row.
func (r *Row) At(col int) rune {
	if col < 0 || col >= len(r.raw) {
		return '\n'
	}
	return r.raw[col]
}
