package editor

import (
	"errors"
	"io/fs"
	"os"
)

// Open loads path into the current buffer, replacing its text and
// resetting the cursor, mark and undo history. A file that does not exist
// gives an empty buffer bound to path. OnLoaded is sent in both cases.
// Any other failure leaves the buffer empty and is shown as the status
// message.
func (e *Editor) Open(path string) error {
	b := e.Current()
	b.vp.Reset()
	b.undo.Clear()
	b.rows.ClearMatch()
	b.filename = path
	b.edited = false

	if def, ok := e.registry.Detect(path); ok {
		e.report(b.setSyntax(def))
	} else {
		_ = b.setSyntax(nil)
	}

	err := e.load(b, path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		ferr := &FileError{Op: "open", Path: path, Err: err}
		e.report(ferr)
		return ferr
	}

	e.report(e.sink.OnLoaded(path))
	return nil
}

func (e *Editor) load(b *Buffer, path string) error {
	f, err := os.Open(path)
	if err == nil {
		err = b.rows.Load(f)
		_ = f.Close()
	}
	if err != nil {
		b.rows.Reset()
		b.rows.InsertRow(0, "")
		b.rows.ClearDirty()
	}
	return err
}

// Save writes the current buffer to path, or to its file name when path is
// empty. A given path becomes the buffer's file name. On success the dirty
// count and undo history are cleared and OnSaved is sent.
func (e *Editor) Save(path string) error {
	b := e.Current()
	if path != "" {
		b.filename = path
	}
	if b.filename == "" {
		e.SetStatus("Can't save! I/O error: %v", ErrNoFilename)
		return &FileError{Op: "save", Err: ErrNoFilename}
	}

	text := b.rows.Text()
	if err := writeFile(b.filename, text); err != nil {
		e.SetStatus("Can't save! I/O error: %v", cause(err))
		return &FileError{Op: "save", Path: b.filename, Err: err}
	}

	b.rows.ClearDirty()
	b.undo.Clear()
	e.SetStatus("%d bytes written to %s", len(text), b.filename)
	e.report(e.sink.OnSaved(b.filename))
	return nil
}

// writeFile truncates path and writes text in a single call.
func writeFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// cause strips the operation and path from a file system error.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
