package renderer

import (
	"fmt"
	"strings"
)

// Color is one of the terminal's palette colors, or its default color.
type Color struct {
	// Index is the palette index (0-255). Ignored when Default is set.
	Index uint8
	// Default selects the terminal's default foreground or background.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// The eight basic ANSI colors.
var (
	ColorBlack   = Color{Index: 0}
	ColorRed     = Color{Index: 1}
	ColorGreen   = Color{Index: 2}
	ColorYellow  = Color{Index: 3}
	ColorBlue    = Color{Index: 4}
	ColorMagenta = Color{Index: 5}
	ColorCyan    = Color{Index: 6}
	ColorWhite   = Color{Index: 7}
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ColorFromIndex creates a palette color.
func ColorFromIndex(index uint8) Color {
	return Color{Index: index}
}

// ColorFromName returns the basic color with the given name, "default", or
// a palette index written as a decimal number.
func ColorFromName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color{Index: uint8(i)}, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(name, "%d", &idx); err == nil && idx >= 0 && idx <= 255 &&
		fmt.Sprint(idx) == name {
		return Color{Index: uint8(idx)}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", name)
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// IsBasic reports whether c is one of the eight basic ANSI colors.
func (c Color) IsBasic() bool {
	return !c.Default && c.Index < 8
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.Index == other.Index
}

// String returns the color name, or idx(N) for extended palette entries.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.IsBasic() {
		return colorNames[c.Index]
	}
	return fmt.Sprintf("idx(%d)", c.Index)
}
