// Package layout maps raw row text to screen columns.
package layout

// DefaultTabStop is the display width of a tab stop.
const DefaultTabStop = 8

// TabExpander expands tabs to the next tab stop.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabStop
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// TabStopOffset returns how many spaces a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabWidth - (col % t.tabWidth)
}

// Expand returns raw with every tab replaced by spaces up to the next tab
// stop. The result is never shorter than raw.
func (t *TabExpander) Expand(raw []rune) []rune {
	tabs := 0
	for _, r := range raw {
		if r == '\t' {
			tabs++
		}
	}
	if tabs == 0 {
		out := make([]rune, len(raw))
		copy(out, raw)
		return out
	}

	out := make([]rune, 0, len(raw)+tabs*(t.tabWidth-1))
	for _, r := range raw {
		if r != '\t' {
			out = append(out, r)
			continue
		}
		for n := t.TabStopOffset(len(out)); n > 0; n-- {
			out = append(out, ' ')
		}
	}
	return out
}

// Column converts a raw column to the rendered column it starts at.
// Columns past the end of raw count one cell each.
func (t *TabExpander) Column(raw []rune, col int) int {
	rcol := 0
	for i := 0; i < col; i++ {
		if i < len(raw) && raw[i] == '\t' {
			rcol = t.NextTabStop(rcol)
		} else {
			rcol++
		}
	}
	return rcol
}

// RawColumn converts a rendered column back to the raw column whose cell
// covers it. Rendered columns past the end map one to one.
func (t *TabExpander) RawColumn(raw []rune, rcol int) int {
	cur := 0
	for i, r := range raw {
		next := cur + 1
		if r == '\t' {
			next = t.NextTabStop(cur)
		}
		if rcol < next {
			return i
		}
		cur = next
	}
	return len(raw) + (rcol - cur)
}

// DefaultTabExpander returns a tab expander with the default tab width of 8.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}
