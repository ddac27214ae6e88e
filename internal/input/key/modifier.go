package key

import "strings"

// Modifier is the set of modifier keys held with a key. A raw terminal only
// reports Ctrl (as a control byte) and, through tcell, Alt. Shift is folded
// into the character itself and kept only for special keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
)

// modifierNames is the order modifiers appear in key names.
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

// Has reports whether m contains any of mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String joins the modifier names with "+", Ctrl first: "Ctrl+Alt".
func (m Modifier) String() string {
	var names []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}
