// Package history provides undo for the editor engine.
//
// Every single character edit pushes an Operation describing the edit that
// reverses it:
//
//   - deleting a character pushes an Insert of that character at the
//     position it must go back to
//   - inserting a character pushes a Delete positioned just after it, to be
//     replayed as a backspace
//   - joining two rows pushes an Insert of '\n' at the join point
//
// Undo pops the newest operation and replays it through a Replayer. The
// replay itself goes through the editor's normal edit path and therefore
// pushes a fresh compensating operation; Stack.Undo discards that one so
// that repeated undos walk backwards through the history.
//
//	stack := history.NewStack(1000)
//	stack.Push(history.NewDelete(3, 0))
//	err := stack.Undo(editor)
//
// The stack is bounded; the oldest operations are dropped first.
package history
