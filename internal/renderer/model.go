package renderer

import (
	"time"

	"github.com/dshills/kilua/internal/engine/buffer"
	"github.com/dshills/kilua/internal/engine/cursor"
)

// Model is the editor state a frame is composed from.
type Model interface {
	// Rows returns the text being edited.
	Rows() *buffer.RowStore

	// Viewport returns the cursor, scroll offsets and mark.
	Viewport() *cursor.Viewport

	// Filename returns the file name shown in the status line.
	Filename() string

	// StatusMessage returns the latest status message and when it was set.
	StatusMessage() (string, time.Time)

	// Pristine reports whether the buffer is empty and was never edited,
	// which is when the welcome banner is shown.
	Pristine() bool
}

// Drawer puts a composed frame on the screen.
type Drawer interface {
	Draw(f Frame) error
}
