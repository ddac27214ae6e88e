// Package renderer composes the editor screen.
//
// Each refresh builds a complete Frame from the editor state:
//
//	┌─────────────────────────────────────────┐
//	│  text rows (or "~" past the end)        │
//	│  ...                                    │
//	├─────────────────────────────────────────┤
//	│  status line (reverse video)            │
//	│  message line                           │
//	└─────────────────────────────────────────┘
//
// Row text is drawn from the tab-expanded rendered form starting at the
// horizontal scroll offset, styled by highlight tag through a Theme, with
// the selection merged over the tag styles. Consecutive characters with
// equal styles are coalesced into one Run, so a backend emits one style
// change per run.
//
// Frames are put on screen by a backend (see package backend), which
// writes the whole frame at once.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultOptions())
//	err := r.Refresh(editor, backend)
package renderer
