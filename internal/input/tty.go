//go:build linux || darwin || freebsd || netbsd || openbsd

package input

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the controlling terminal in raw mode.
type TTY struct {
	file *os.File
	fd   int

	mu   sync.Mutex
	orig *unix.Termios
}

// OpenTTY wraps f, which must be a terminal.
func OpenTTY(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, &TerminalError{Op: "open", Err: ErrNotTerminal}
	}
	return &TTY{file: f, fd: fd}, nil
}

// EnableRawMode switches the terminal to raw mode with a read timeout of
// one tenth of a second. The previous settings are kept for Restore.
func (t *TTY) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	orig, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		return &TerminalError{Op: "get attributes", Err: err}
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &raw); err != nil {
		return &TerminalError{Op: "set raw mode", Err: err}
	}
	if t.orig == nil {
		t.orig = orig
	}
	return nil
}

// Restore puts back the settings saved by EnableRawMode. It is safe to call
// more than once.
func (t *TTY) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, t.orig); err != nil {
		return &TerminalError{Op: "restore", Err: err}
	}
	t.orig = nil
	return nil
}

// Size returns the terminal size in columns and rows.
func (t *TTY) Size() (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}

	cols, rows, err = term.GetSize(t.fd)
	if err != nil {
		return 0, 0, &TerminalError{Op: "get size", Err: err}
	}
	if cols == 0 || rows == 0 {
		return 0, 0, &TerminalError{Op: "get size", Err: errors.New("zero window size")}
	}
	return cols, rows, nil
}

// ReadByteTimeout reads one byte, waiting at most the raw mode timeout.
func (t *TTY) ReadByteTimeout() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.fd, buf[:])
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, false, nil
	case err != nil:
		return 0, false, &TerminalError{Op: "read", Err: err}
	case n == 0:
		return 0, false, nil
	}
	return buf[0], true, nil
}
