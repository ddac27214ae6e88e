package history

import (
	"errors"
	"sync"
)

// DefaultMaxEntries bounds a stack created with a non-positive limit.
const DefaultMaxEntries = 1000

// ErrNothingToUndo is returned by Pop and Undo on an empty stack.
var ErrNothingToUndo = errors.New("nothing to undo")

// Replayer applies operations to the editor. Insert and Delete must go
// through the editor's normal edit path.
type Replayer interface {
	Warp(x, y int)
	Insert(ch rune)
	Delete()
}

// Stack is a bounded LIFO of compensating operations.
type Stack struct {
	mu         sync.Mutex
	ops        []Operation
	maxEntries int
}

// NewStack creates a stack holding at most maxEntries operations.
func NewStack(maxEntries int) *Stack {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack{maxEntries: maxEntries}
}

// Push adds op, dropping the oldest operation when the stack is full.
func (s *Stack) Push(op Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, op)
	if excess := len(s.ops) - s.maxEntries; excess > 0 {
		s.ops = append(s.ops[:0], s.ops[excess:]...)
	}
}

// Pop removes and returns the newest operation.
func (s *Stack) Pop() (Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ops) == 0 {
		return Operation{}, ErrNothingToUndo
	}
	op := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]
	return op, nil
}

// Peek returns the newest operation without removing it.
func (s *Stack) Peek() (Operation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ops) == 0 {
		return Operation{}, false
	}
	return s.ops[len(s.ops)-1], true
}

// Len returns the number of operations on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

// Clear removes every operation.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
}

// MaxEntries returns the capacity of the stack.
func (s *Stack) MaxEntries() int {
	return s.maxEntries
}

// Undo pops the newest operation and replays it through r. The operation
// the replay pushes, if any, is discarded.
// The lock is not held during the replay since r pushes onto this stack.
func (s *Stack) Undo(r Replayer) error {
	op, err := s.Pop()
	if err != nil {
		return err
	}

	before := s.Len()
	r.Warp(op.X, op.Y)
	switch op.Kind {
	case Insert:
		r.Insert(op.Char)
	case Delete:
		r.Delete()
	}

	if s.Len() > before {
		_, _ = s.Pop()
	}
	return nil
}
