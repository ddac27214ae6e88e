package history

import (
	"errors"
	"testing"
)

// lineEditor is a single row editor that records compensating operations
// the same way the editor does.
type lineEditor struct {
	text  []rune
	x     int
	stack *Stack
}

func (e *lineEditor) Warp(x, _ int) {
	if x > len(e.text) {
		x = len(e.text)
	}
	e.x = x
}

func (e *lineEditor) Insert(ch rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.x+1:], e.text[e.x:])
	e.text[e.x] = ch
	e.x++
	e.stack.Push(NewDelete(e.x, 0))
}

func (e *lineEditor) Delete() {
	if e.x == 0 {
		return
	}
	c := e.text[e.x-1]
	e.text = append(e.text[:e.x-1], e.text[e.x:]...)
	e.x--
	e.stack.Push(NewInsert(c, e.x, 0))
}

func newLineEditor(text string) *lineEditor {
	return &lineEditor{text: []rune(text), x: len([]rune(text)), stack: NewStack(0)}
}

func TestUndoInserts(t *testing.T) {
	e := newLineEditor("")
	for _, r := range "abc" {
		e.Insert(r)
	}

	for i, want := range []string{"ab", "a", ""} {
		if err := e.stack.Undo(e); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
		if string(e.text) != want {
			t.Errorf("after undo %d: %q, want %q", i, string(e.text), want)
		}
	}

	if e.stack.Len() != 0 {
		t.Errorf("stack should be empty, has %d", e.stack.Len())
	}
	if err := e.stack.Undo(e); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestUndoDeletes(t *testing.T) {
	e := newLineEditor("abc")
	e.Delete()
	e.Delete()
	if string(e.text) != "a" {
		t.Fatalf("text = %q", string(e.text))
	}

	for _, want := range []string{"ab", "abc"} {
		if err := e.stack.Undo(e); err != nil {
			t.Fatal(err)
		}
		if string(e.text) != want {
			t.Errorf("text = %q, want %q", string(e.text), want)
		}
	}
}

type silentReplayer struct{ calls []string }

func (s *silentReplayer) Warp(int, int) { s.calls = append(s.calls, "warp") }
func (s *silentReplayer) Insert(rune)   { s.calls = append(s.calls, "insert") }
func (s *silentReplayer) Delete()       { s.calls = append(s.calls, "delete") }

func TestUndoKeepsStackWhenReplayPushesNothing(t *testing.T) {
	s := NewStack(10)
	s.Push(NewDelete(1, 0))
	s.Push(NewInsert('x', 0, 0))

	r := &silentReplayer{}
	if err := s.Undo(r); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if len(r.calls) != 2 || r.calls[0] != "warp" || r.calls[1] != "insert" {
		t.Errorf("calls = %v", r.calls)
	}
}

func TestStackBounded(t *testing.T) {
	s := NewStack(3)
	for i := 0; i < 5; i++ {
		s.Push(NewDelete(i, 0))
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	for _, want := range []int{4, 3, 2} {
		op, err := s.Pop()
		if err != nil {
			t.Fatal(err)
		}
		if op.X != want {
			t.Errorf("popped X = %d, want %d", op.X, want)
		}
	}
	if _, err := s.Pop(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestStackClear(t *testing.T) {
	s := NewStack(0)
	if s.MaxEntries() != DefaultMaxEntries {
		t.Errorf("MaxEntries() = %d", s.MaxEntries())
	}
	s.Push(NewInsert('a', 0, 0))
	if op, ok := s.Peek(); !ok || op.Char != 'a' {
		t.Errorf("Peek() = %v, %v", op, ok)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left operations behind")
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack")
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{NewInsert('\n', 3, 1), `insert '\n' at 3,1`},
		{NewDelete(2, 0), "delete at 2,0"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if Insert.String() != "insert" || Delete.String() != "delete" {
		t.Error("unexpected kind names")
	}
}
