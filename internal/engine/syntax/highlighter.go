package syntax

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// separators bound words, numbers and keywords.
const separators = ":{},.()+-/*=~%[];<>|&"

// IsSeparator reports whether r separates words.
func IsSeparator(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// IsPrintable reports whether r can be drawn as a single screen cell.
func IsPrintable(r rune) bool {
	return unicode.IsPrint(r) && runewidth.RuneWidth(r) == 1
}

// Document is the row-oriented view the highlighter works on.
type Document interface {
	// Len returns the number of rows.
	Len() int
	// Rendered returns the rendered text of row i.
	Rendered(i int) []rune
	// OpenComment returns the stored open-comment state of row i.
	OpenComment(i int) bool
	// SetHighlight stores tags and the open-comment state for row i and
	// returns the previously stored open-comment state.
	SetHighlight(i int, tags []Tag, open bool) bool
}

type keyword struct {
	word      []rune
	secondary bool
}

// Highlighter applies a Definition to rows.
// A nil definition, or one that fails validation, highlights everything as
// Normal.
type Highlighter struct {
	def        *Definition
	err        error
	keywords   []keyword
	lineOpen   []rune
	blockOpen  []rune
	blockClose []rune
}

// New creates a highlighter for def. def may be nil.
func New(def *Definition) *Highlighter {
	h := &Highlighter{}
	if def == nil {
		return h
	}
	if err := def.Validate(); err != nil {
		h.err = err
		return h
	}

	h.def = def
	h.lineOpen = []rune(def.LineOpen)
	h.blockOpen = []rune(def.BlockOpen)
	h.blockClose = []rune(def.BlockClose)
	h.keywords = make([]keyword, 0, len(def.Keywords))
	for _, kw := range def.Keywords {
		secondary := strings.HasSuffix(kw, secondaryMarker)
		h.keywords = append(h.keywords, keyword{
			word:      []rune(strings.TrimSuffix(kw, secondaryMarker)),
			secondary: secondary,
		})
	}
	return h
}

// Definition returns the active definition, or nil when highlighting is off.
func (h *Highlighter) Definition() *Definition {
	return h.def
}

// Err returns the validation error of the definition given to New, if any.
func (h *Highlighter) Err() error {
	return h.err
}

// Update rehighlights row at and keeps going forward while the
// open-comment state of the row just scanned differs from what was stored.
// It returns the number of rows scanned.
func (h *Highlighter) Update(doc Document, at int) int {
	scanned := 0
	for i := at; i >= 0 && i < doc.Len(); i++ {
		inComment := i > 0 && doc.OpenComment(i-1)
		rendered := doc.Rendered(i)

		tags, open := h.Row(rendered, inComment)
		if len(rendered) == 0 {
			// An empty row carries its predecessor's state through.
			open = inComment
		}

		was := doc.SetHighlight(i, tags, open)
		scanned++
		if was == open {
			break
		}
	}
	return scanned
}

// Row classifies one rendered row. inComment is true when the row starts
// inside a block comment. It returns one tag per rune and whether the row
// ends inside a block comment.
func (h *Highlighter) Row(r []rune, inComment bool) ([]Tag, bool) {
	tags := make([]Tag, len(r))
	if h.def == nil {
		return tags, false
	}

	strs := h.def.Flags.Has(HighlightStrings)
	nums := h.def.Flags.Has(HighlightNumbers)

	i := 0
	for i < len(r) && unicode.IsSpace(r[i]) {
		if inComment {
			tags[i] = BlockComment
		}
		i++
	}

	prevSep := true
	var quote rune

	for i < len(r) {
		c := r[i]

		if inComment {
			tags[i] = BlockComment
			if hasPrefixAt(r, i, h.blockClose) {
				for k := range h.blockClose {
					tags[i+k] = BlockComment
				}
				i += len(h.blockClose)
				inComment = false
				prevSep = true
				continue
			}
			prevSep = false
			i++
			continue
		}

		if quote == 0 && hasPrefixAt(r, i, h.blockOpen) {
			for k := range h.blockOpen {
				tags[i+k] = BlockComment
			}
			i += len(h.blockOpen)
			inComment = true
			prevSep = false
			continue
		}

		if quote == 0 && prevSep && hasPrefixAt(r, i, h.lineOpen) {
			for k := i; k < len(r); k++ {
				tags[k] = Comment
			}
			return tags, false
		}

		if quote != 0 {
			if strs {
				tags[i] = String
			}
			if c == '\\' && i+1 < len(r) {
				if strs {
					tags[i+1] = String
				}
				i += 2
				prevSep = false
				continue
			}
			if c == quote {
				quote = 0
			}
			i++
			continue
		}

		if c == '"' || c == '\'' {
			quote = c
			if strs {
				tags[i] = String
			}
			i++
			prevSep = false
			continue
		}

		if !IsPrintable(c) {
			tags[i] = NonPrintable
			i++
			prevSep = false
			continue
		}

		if nums && ((isDigit(c) && (prevSep || (i > 0 && tags[i-1] == Number))) ||
			(c == '.' && i > 0 && tags[i-1] == Number)) {
			tags[i] = Number
			i++
			prevSep = false
			continue
		}

		if prevSep {
			if n, tag := h.keywordAt(r, i); n > 0 {
				for k := 0; k < n; k++ {
					tags[i+k] = tag
				}
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return tags, inComment
}

// keywordAt returns the length and tag of the first keyword that starts at
// position i and is followed by a separator or the end of the row.
func (h *Highlighter) keywordAt(r []rune, i int) (int, Tag) {
	for _, kw := range h.keywords {
		if !hasPrefixAt(r, i, kw.word) {
			continue
		}
		end := i + len(kw.word)
		if end < len(r) && !IsSeparator(r[end]) {
			continue
		}
		if kw.secondary {
			return len(kw.word), Keyword2
		}
		return len(kw.word), Keyword1
	}
	return 0, Normal
}

func hasPrefixAt(r []rune, i int, tok []rune) bool {
	if len(tok) == 0 || i+len(tok) > len(r) {
		return false
	}
	for k, t := range tok {
		if r[i+k] != t {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
