package key

import (
	"testing"
)

func TestFromByte(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{'a', "a"},
		{'Z', "Z"},
		{' ', " "},
		{'\r', "Enter"},
		{'\t', "Tab"},
		{0x1b, "Escape"},
		{0x7f, "Backspace"},
		{0x01, "Ctrl+A"},
		{0x08, "Ctrl+H"},
		{0x13, "Ctrl+S"},
		{0x1a, "Ctrl+Z"},
		{0x00, "Ctrl+Space"},
		{0x1c, "Ctrl+\\"},
	}

	for _, tt := range tests {
		if got := FromByte(tt.b).Name(); got != tt.want {
			t.Errorf("FromByte(%#x).Name() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('é', ModNone), "é"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewCtrlEvent('Q'), "Ctrl+Q"},
		{NewRuneEvent('x', ModAlt), "Alt+X"},
		{NewSpecialEvent(KeyUp, ModNone), "Up"},
		{NewSpecialEvent(KeyLeft, ModCtrl), "Ctrl+Left"},
		{Idle(), "Idle"},
	}

	for _, tt := range tests {
		if got := tt.event.Name(); got != tt.want {
			t.Errorf("%#v.Name() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	if !FromByte(0x08).IsErase() || !FromByte(0x7f).IsErase() || !NewSpecialEvent(KeyDelete, ModNone).IsErase() {
		t.Error("Backspace, Delete and Ctrl+H should erase")
	}
	if FromByte('h').IsErase() {
		t.Error("plain h should not erase")
	}
	if !FromByte(0x13).IsCtrl('s') || !FromByte(0x13).IsCtrl('S') {
		t.Error("IsCtrl should match either case")
	}
	if FromByte(0x13).IsChar() {
		t.Error("Ctrl+S is not a character")
	}
	if !Idle().IsIdle() || FromByte('a').IsIdle() {
		t.Error("IsIdle")
	}
	if !FromByte(0x1b).IsEscape() || !FromByte('\r').IsEnter() {
		t.Error("IsEscape/IsEnter")
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('a', ModNone)
	b := NewRuneEvent('a', ModNone)
	if !a.Equals(b) {
		t.Error("same key press should be equal regardless of timestamp")
	}
	if a.Equals(NewRuneEvent('a', ModCtrl)) {
		t.Error("modifiers should matter")
	}
}
