package editor

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrNoScreen is returned by interactive operations when no screen is
	// attached.
	ErrNoScreen = errors.New("no screen attached")

	// ErrNoFilename is returned by Save when the buffer has no file name.
	ErrNoFilename = errors.New("no file name")

	// ErrBufferNotFound is returned when a buffer lookup fails.
	ErrBufferNotFound = errors.New("buffer not found")
)

// FileError reports a failure to open or save a file. Editing goes on; the
// error is shown as a status message.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
