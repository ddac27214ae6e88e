package history

import (
	"fmt"
	"time"
)

// Kind is the type of a compensating operation.
type Kind uint8

const (
	// Insert puts Char back at (X, Y).
	Insert Kind = iota
	// Delete removes the character before (X, Y).
	Delete
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is one compensating single character edit. X and Y are absolute
// buffer coordinates.
type Operation struct {
	Kind      Kind
	Char      rune
	X, Y      int
	Timestamp time.Time
}

// NewInsert creates an operation that inserts ch at (x, y).
func NewInsert(ch rune, x, y int) Operation {
	return Operation{Kind: Insert, Char: ch, X: x, Y: y, Timestamp: time.Now()}
}

// NewDelete creates an operation that backspaces at (x, y).
func NewDelete(x, y int) Operation {
	return Operation{Kind: Delete, X: x, Y: y, Timestamp: time.Now()}
}

// String returns a human readable representation of the operation.
func (op Operation) String() string {
	if op.Kind == Insert {
		return fmt.Sprintf("insert %q at %d,%d", op.Char, op.X, op.Y)
	}
	return fmt.Sprintf("delete at %d,%d", op.X, op.Y)
}
