package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewCtrlEvent creates the event for Ctrl with a letter, such as Ctrl+S.
func NewCtrlEvent(letter rune) Event {
	return NewRuneEvent(unicode.ToLower(letter), ModCtrl)
}

// Idle returns an idle tick event.
func Idle() Event {
	return Event{Key: KeyIdle, Timestamp: time.Now()}
}

// FromByte maps a single byte read in raw mode to an event. Control bytes
// become Ctrl events, except for the ones with a key of their own.
func FromByte(b byte) Event {
	switch {
	case b == 0:
		return NewRuneEvent(' ', ModCtrl)
	case b == '\t':
		return NewSpecialEvent(KeyTab, ModNone)
	case b == '\r':
		return NewSpecialEvent(KeyEnter, ModNone)
	case b == 0x1b:
		return NewSpecialEvent(KeyEscape, ModNone)
	case b == 0x7f:
		return NewSpecialEvent(KeyBackspace, ModNone)
	case b >= 1 && b <= 26:
		return NewRuneEvent(rune('a'+b-1), ModCtrl)
	case b < 0x20:
		return NewRuneEvent(rune('@'+b), ModCtrl)
	default:
		return NewRuneEvent(rune(b), ModNone)
	}
}

// IsIdle returns true for idle ticks.
func (e Event) IsIdle() bool {
	return e.Key == KeyIdle
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl or Alt.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt)
}

// IsCtrl returns true if this is Ctrl with the given letter.
func (e Event) IsCtrl(letter rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && e.Rune == unicode.ToLower(letter)
}

// IsEscape returns true if this is the Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// IsEnter returns true if this is the Enter key.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter
}

// IsErase returns true for the keys that delete backwards in a prompt:
// Backspace, Delete and Ctrl+H.
func (e Event) IsErase() bool {
	return e.Key == KeyBackspace || e.Key == KeyDelete || e.IsCtrl('h')
}

// Name returns the canonical name of the event. Printable characters name
// themselves; everything else is a key name such as "Enter" or "Ctrl+S".
func (e Event) Name() string {
	switch e.Key {
	case KeyRune:
		if e.IsChar() {
			return string(e.Rune)
		}
		var ch string
		switch {
		case e.Rune == ' ':
			ch = "Space"
		case unicode.IsPrint(e.Rune):
			ch = strings.ToUpper(string(e.Rune))
		default:
			ch = fmt.Sprintf("U+%04X", e.Rune)
		}
		if mods := e.Modifiers.Without(ModShift).String(); mods != "" {
			return mods + "+" + ch
		}
		return ch
	case KeyNone, KeyIdle:
		return e.Key.String()
	default:
		if mods := e.Modifiers.String(); mods != "" {
			return mods + "+" + e.Key.String()
		}
		return e.Key.String()
	}
}

// String returns the canonical name of the event.
func (e Event) String() string {
	return e.Name()
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
