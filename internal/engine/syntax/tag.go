// Package syntax classifies rendered row text into highlight tags.
//
// A Highlighter scans one row at a time using a Definition (keywords,
// comment tokens and flags). Block comment state is carried from row to
// row: when a row's open-comment state changes the following row is
// rescanned, and so on until the state settles. Propagation only ever moves
// forward from the row that was edited.
package syntax

import "fmt"

// Tag is the highlight class of a single rendered character.
type Tag uint8

// Highlight tags.
const (
	Normal Tag = iota
	NonPrintable
	Comment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	Match
	Selection
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case Normal:
		return "Normal"
	case NonPrintable:
		return "NonPrintable"
	case Comment:
		return "Comment"
	case BlockComment:
		return "BlockComment"
	case Keyword1:
		return "Keyword1"
	case Keyword2:
		return "Keyword2"
	case String:
		return "String"
	case Number:
		return "Number"
	case Match:
		return "Match"
	case Selection:
		return "Selection"
	default:
		return fmt.Sprintf("Tag(%d)", t)
	}
}

// IsComment reports whether the tag is either comment class.
func (t Tag) IsComment() bool {
	return t == Comment || t == BlockComment
}
