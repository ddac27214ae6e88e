package renderer

// Attribute is a set of SGR text attributes.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrUnderline
	AttrReverse
)

// Has reports whether a contains any of attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is how a run of text is drawn. The zero Style is not the default
// style; use DefaultStyle, which selects the terminal's own colors.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle draws in the terminal's default colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle draws in fg on the default background.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Merge lays other over s: its non-default colors replace those of s and
// its attributes are added. Selection highlighting is drawn this way.
func (s Style) Merge(other Style) Style {
	if !other.Foreground.IsDefault() {
		s.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		s.Background = other.Background
	}
	s.Attributes |= other.Attributes
	return s
}

// Equals reports whether adjacent runs in s and other can be joined.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault reports whether s needs no SGR codes at all.
func (s Style) IsDefault() bool {
	return s.Equals(DefaultStyle())
}
