package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// BufferList is the ordered list of open buffers and the index of the
// current one. There is always at least one buffer.
type BufferList struct {
	buffers []*Buffer
	current int
	counter int // for generating buffer names

	factory func(name string) *Buffer
}

func newBufferList(factory func(name string) *Buffer) *BufferList {
	l := &BufferList{factory: factory}
	l.Create("")
	return l
}

// Len returns the number of buffers.
func (l *BufferList) Len() int {
	return len(l.buffers)
}

// Current returns the current buffer.
func (l *BufferList) Current() *Buffer {
	return l.buffers[l.current]
}

// Index returns the position of the current buffer.
func (l *BufferList) Index() int {
	return l.current
}

// At returns the buffer at position i, or nil.
func (l *BufferList) At(i int) *Buffer {
	if i < 0 || i >= len(l.buffers) {
		return nil
	}
	return l.buffers[i]
}

// Select makes the buffer at position i current. Out of range positions
// are ignored.
func (l *BufferList) Select(i int) bool {
	if i < 0 || i >= len(l.buffers) {
		return false
	}
	l.current = i
	return true
}

// SelectByName makes the first buffer called name current.
func (l *BufferList) SelectByName(name string) bool {
	return l.Select(l.IndexOf(name))
}

// IndexOf returns the position of the first buffer called name, or -1.
func (l *BufferList) IndexOf(name string) int {
	for i, b := range l.buffers {
		if b.name == name {
			return i
		}
	}
	return -1
}

// Find returns the buffer with the given id.
func (l *BufferList) Find(id uuid.UUID) (*Buffer, error) {
	for _, b := range l.buffers {
		if b.id == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBufferNotFound, id)
}

// Create appends a new empty buffer and makes it current. An empty name
// is replaced by "*Buffer-N*".
func (l *BufferList) Create(name string) *Buffer {
	l.counter++
	if name == "" {
		name = fmt.Sprintf("*Buffer-%d*", l.counter)
	}
	b := l.factory(name)
	l.buffers = append(l.buffers, b)
	l.current = len(l.buffers) - 1
	return b
}

// Kill removes the current buffer and makes the last buffer current.
// Killing the only buffer replaces it with a fresh empty one.
func (l *BufferList) Kill() {
	l.buffers = append(l.buffers[:l.current], l.buffers[l.current+1:]...)
	if len(l.buffers) == 0 {
		l.counter = 0
		l.Create("")
		return
	}
	l.current = len(l.buffers) - 1
}

// Names returns the buffer names in order.
func (l *BufferList) Names() []string {
	names := make([]string, len(l.buffers))
	for i, b := range l.buffers {
		names[i] = b.name
	}
	return names
}

// each calls fn for every buffer.
func (l *BufferList) each(fn func(*Buffer)) {
	for _, b := range l.buffers {
		fn(b)
	}
}
