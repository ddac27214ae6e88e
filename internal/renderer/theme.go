package renderer

import (
	"github.com/dshills/kilua/internal/engine/syntax"
)

// Theme maps highlight tags to styles.
type Theme struct {
	// Normal is the style of untagged text and of the "~" filler.
	Normal Style

	// Selection is merged over the tag style of selected characters.
	Selection Style

	// NonPrintable is used for the placeholder of non-printable characters.
	NonPrintable Style

	// Status is the style of the status line.
	Status Style

	// TagStyles maps highlight tags to their styles.
	TagStyles map[syntax.Tag]Style
}

// StyleForTag returns the style for a tag, falling back to Normal.
func (t *Theme) StyleForTag(tag syntax.Tag) Style {
	switch tag {
	case syntax.NonPrintable:
		return t.NonPrintable
	case syntax.Selection:
		return t.Normal.Merge(t.Selection)
	}
	if style, ok := t.TagStyles[tag]; ok {
		return style
	}
	return t.Normal
}

// DefaultTheme returns the classic eight-color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Normal:       DefaultStyle(),
		Selection:    DefaultStyle().WithBackground(ColorWhite),
		NonPrintable: DefaultStyle().Reverse(),
		Status:       DefaultStyle().Reverse(),
		TagStyles: map[syntax.Tag]Style{
			syntax.Comment:      NewStyle(ColorCyan),
			syntax.BlockComment: NewStyle(ColorCyan),
			syntax.Keyword1:     NewStyle(ColorYellow),
			syntax.Keyword2:     NewStyle(ColorGreen),
			syntax.String:       NewStyle(ColorMagenta),
			syntax.Number:       NewStyle(ColorRed),
			syntax.Match:        NewStyle(ColorBlue),
		},
	}
}

// Placeholder returns the visible stand-in for a non-printable rune:
// '@'+r for control characters up to 26, '?' otherwise.
func Placeholder(r rune) rune {
	if r >= 0 && r <= 26 {
		return '@' + r
	}
	return '?'
}
