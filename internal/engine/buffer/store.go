package buffer

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/dshills/kilua/internal/engine/syntax"
	"github.com/dshills/kilua/internal/renderer/layout"
)

// RowStore is the ordered list of rows of one buffer and the sole owner of
// its rows.
type RowStore struct {
	rows  []*Row
	dirty int
	tabs  *layout.TabExpander
	hl    *syntax.Highlighter

	matchRow   int
	matchSaved []syntax.Tag
}

// NewRowStore creates an empty row store.
func NewRowStore(opts ...Option) *RowStore {
	s := &RowStore{
		tabs:     layout.DefaultTabExpander(),
		hl:       syntax.New(nil),
		matchRow: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read Operations

// Len returns the number of rows.
func (s *RowStore) Len() int {
	return len(s.rows)
}

// Row returns row i, or nil when i is out of range.
func (s *RowStore) Row(i int) *Row {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return s.rows[i]
}

// RowLen returns the raw length of row i, or 0 when i is out of range.
func (s *RowStore) RowLen(i int) int {
	if r := s.Row(i); r != nil {
		return len(r.raw)
	}
	return 0
}

// At returns the character at (col, row). Positions past the end of a row,
// or outside the store, read as '\n'.
func (s *RowStore) At(row, col int) rune {
	if r := s.Row(row); r != nil {
		return r.At(col)
	}
	return '\n'
}

// Rendered returns the rendered text of row i.
func (s *RowStore) Rendered(i int) []rune {
	if r := s.Row(i); r != nil {
		return r.rendered
	}
	return nil
}

// OpenComment reports whether row i ends inside a block comment.
func (s *RowStore) OpenComment(i int) bool {
	if r := s.Row(i); r != nil {
		return r.open
	}
	return false
}

// SetHighlight stores the tags and comment state of row i and returns the
// comment state it replaced.
func (s *RowStore) SetHighlight(i int, tags []syntax.Tag, open bool) bool {
	r := s.Row(i)
	if r == nil {
		return open
	}
	was := r.open
	r.highlight = tags
	r.open = open
	return was
}

// Text returns the content with every row followed by a newline.
func (s *RowStore) Text() string {
	var sb strings.Builder
	for _, r := range s.rows {
		sb.WriteString(string(r.raw))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dirty returns the number of mutations since the last load or ClearDirty.
func (s *RowStore) Dirty() int {
	return s.dirty
}

// ClearDirty resets the mutation counter.
func (s *RowStore) ClearDirty() {
	s.dirty = 0
}

// TabStop returns the tab width used for rendering.
func (s *RowStore) TabStop() int {
	return s.tabs.TabWidth()
}

// Tabs returns the tab expander used for rendering.
func (s *RowStore) Tabs() *layout.TabExpander {
	return s.tabs
}

// Highlighter returns the active highlighter.
func (s *RowStore) Highlighter() *syntax.Highlighter {
	return s.hl
}

// SetHighlighter replaces the highlighter and rehighlights every row.
// A nil highlighter turns highlighting off.
func (s *RowStore) SetHighlighter(h *syntax.Highlighter) {
	if h == nil {
		h = syntax.New(nil)
	}
	s.hl = h
	s.Rehighlight()
}

// Rehighlight recomputes the highlight of every row from the top.
func (s *RowStore) Rehighlight() {
	s.matchRow, s.matchSaved = -1, nil
	open := false
	for _, r := range s.rows {
		tags, o := s.hl.Row(r.rendered, open)
		if len(r.rendered) == 0 {
			o = open
		}
		r.highlight = tags
		r.open = o
		open = o
	}
}

// Load replaces the content with the lines read from src. Trailing newline
// and carriage return characters are stripped from each line. The store
// always holds at least one row afterwards, and the dirty counter is reset.
func (s *RowStore) Load(src io.Reader) error {
	var rows []*Row
	br := bufio.NewReader(src)
	for {
		line, err := br.ReadString('\n')
		if line != "" || err == nil {
			line = strings.TrimRight(line, "\r\n")
			rows = append(rows, &Row{index: len(rows), raw: []rune(line)})
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	if len(rows) == 0 {
		rows = append(rows, &Row{})
	}

	s.rows = rows
	for _, r := range s.rows {
		r.rendered = s.tabs.Expand(r.raw)
	}
	s.Rehighlight()
	s.dirty = 0
	return nil
}

// Reset removes every row.
func (s *RowStore) Reset() {
	s.rows = nil
	s.matchRow, s.matchSaved = -1, nil
	s.dirty = 0
}

// Structural Operations

// InsertRow inserts a row holding text at position at. A position past the
// end appends; a negative position is ignored.
func (s *RowStore) InsertRow(at int, text string) {
	if at < 0 {
		return
	}
	if at > len(s.rows) {
		at = len(s.rows)
	}
	s.insertRow(at, []rune(text))
	s.dirty++
	s.refresh(at, at, at+1)
}

// DeleteRow removes row at. Out of range positions are ignored.
func (s *RowStore) DeleteRow(at int) {
	if at < 0 || at >= len(s.rows) {
		return
	}
	s.dropMatch()
	s.rows = append(s.rows[:at], s.rows[at+1:]...)
	s.renumber(at)
	s.dirty++
	s.refresh(-1, at)
}

// InsertChar inserts ch at (col, row). Missing rows are appended, and a
// column past the end of the row pads the row with spaces first.
func (s *RowStore) InsertChar(row, col int, ch rune) {
	if row < 0 {
		return
	}
	for len(s.rows) <= row {
		s.insertRow(len(s.rows), nil)
		s.refresh(-1, len(s.rows)-1)
	}
	if col < 0 {
		col = 0
	}

	r := s.rows[row]
	for len(r.raw) < col {
		r.raw = append(r.raw, ' ')
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[col+1:], r.raw[col:])
	r.raw[col] = ch
	s.dirty++
	s.refresh(row, row)
}

// DeleteChar removes the character at (col, row) and reports whether one
// was removed.
func (s *RowStore) DeleteChar(row, col int) bool {
	r := s.Row(row)
	if r == nil || col < 0 || col >= len(r.raw) {
		return false
	}
	r.raw = append(r.raw[:col], r.raw[col+1:]...)
	s.dirty++
	s.refresh(row, row)
	return true
}

// AppendText appends text to the end of row.
func (s *RowStore) AppendText(row int, text string) {
	r := s.Row(row)
	if r == nil {
		return
	}
	r.raw = append(r.raw, []rune(text)...)
	s.dirty++
	s.refresh(row, row)
}

// SplitRow moves the characters of row from col onwards into a new row
// inserted after it. Splitting the position just past the last row appends
// an empty row.
func (s *RowStore) SplitRow(row, col int) {
	if row < 0 || row > len(s.rows) {
		return
	}
	if row == len(s.rows) {
		s.InsertRow(row, "")
		return
	}

	r := s.rows[row]
	col = clamp(col, 0, len(r.raw))
	suffix := append([]rune(nil), r.raw[col:]...)
	r.raw = r.raw[:col]
	s.insertRow(row+1, suffix)
	s.dirty++
	s.refresh(row, row, row+1, row+2)
}

// JoinWithPrevious appends row to its predecessor and removes it. It
// returns the length the predecessor had before the join.
func (s *RowStore) JoinWithPrevious(row int) (int, bool) {
	if row < 1 || row >= len(s.rows) {
		return 0, false
	}
	s.dropMatch()
	prev := s.rows[row-1]
	at := len(prev.raw)
	prev.raw = append(prev.raw, s.rows[row].raw...)
	s.rows = append(s.rows[:row], s.rows[row+1:]...)
	s.renumber(row)
	s.dirty++
	s.refresh(row-1, row-1, row)
	return at, true
}

// Search Match Overlay

// SetMatch tags n rendered characters of row starting at start as Match,
// saving the row's tags. Any previous match is cleared first.
func (s *RowStore) SetMatch(row, start, n int) {
	s.ClearMatch()
	r := s.Row(row)
	if r == nil || start < 0 || n <= 0 {
		return
	}
	s.matchRow = row
	s.matchSaved = append([]syntax.Tag(nil), r.highlight...)
	for i := start; i < start+n && i < len(r.highlight); i++ {
		r.highlight[i] = syntax.Match
	}
}

// ClearMatch restores the tags saved by SetMatch.
func (s *RowStore) ClearMatch() {
	if r := s.Row(s.matchRow); r != nil && len(s.matchSaved) == len(r.highlight) {
		copy(r.highlight, s.matchSaved)
	}
	s.dropMatch()
}

func (s *RowStore) dropMatch() {
	s.matchRow, s.matchSaved = -1, nil
}

// insertRow places a new row at position at and renumbers the rows after
// it. The caller refreshes derived state.
func (s *RowStore) insertRow(at int, raw []rune) {
	s.dropMatch()
	r := &Row{raw: raw}
	s.rows = append(s.rows, nil)
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = r
	s.renumber(at)
}

func (s *RowStore) renumber(from int) {
	for i := from; i < len(s.rows); i++ {
		s.rows[i].index = i
	}
}

// refresh rebuilds the rendered form of row render (if it exists) and then
// rehighlights from each of the given rows, letting comment state carry
// forward from there.
func (s *RowStore) refresh(render int, rows ...int) {
	if r := s.Row(render); r != nil {
		r.rendered = s.tabs.Expand(r.raw)
	}
	for _, i := range rows {
		if r := s.Row(i); r != nil {
			if r.rendered == nil {
				r.rendered = s.tabs.Expand(r.raw)
			}
			s.hl.Update(s, i)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
