package buffer

import (
	"github.com/dshills/kilua/internal/engine/syntax"
	"github.com/dshills/kilua/internal/renderer/layout"
)

// Option is a functional option for configuring a RowStore.
type Option func(*RowStore)

// WithTabStop sets the tab stop used to build rendered rows.
func WithTabStop(width int) Option {
	return func(s *RowStore) {
		s.tabs = layout.NewTabExpander(width)
	}
}

// WithHighlighter sets the highlighter applied to every row.
func WithHighlighter(h *syntax.Highlighter) Option {
	return func(s *RowStore) {
		if h != nil {
			s.hl = h
		}
	}
}
