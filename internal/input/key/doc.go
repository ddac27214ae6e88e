// Package key provides the key event type delivered by the input decoder.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, a character (KeyRune) or an idle tick
//   - Modifier: modifier keys (Ctrl, Alt, Shift)
//   - Event: a single key press with modifiers and timestamp
//
// # Key Names
//
// Every event has a canonical name, the string handed to the scripting layer:
//
//   - printable characters name themselves: "a", "A", "1", " "
//   - special keys: "Enter", "Tab", "Escape", "Backspace", "Delete", "Home",
//     "End", "PageUp", "PageDown", "Up", "Down", "Left", "Right"
//   - control characters: "Ctrl+A" through "Ctrl+Z", "Ctrl+Space"
package key
