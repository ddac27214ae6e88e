package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/kilua/internal/input/key"
)

// maxQuery bounds the length of prompt and search input.
const maxQuery = 256

// ReadKey waits for the next key and returns its name.
func (e *Editor) ReadKey() (string, error) {
	ev, err := e.readKey()
	if err != nil {
		return "", err
	}
	return ev.Name(), nil
}

// Prompt reads a line of input, echoing label and the text typed so far
// in the status message. Escape cancels and returns ok false. The cursor
// is restored either way.
func (e *Editor) Prompt(label string) (text string, ok bool, err error) {
	vp := e.Current().vp
	saved := vp.Save()
	defer vp.Restore(saved)

	var query []rune
	for {
		e.SetStatus("%s%s", label, string(query))
		if err := e.refresh(); err != nil {
			return "", false, err
		}

		ev, err := e.readKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case ev.IsErase():
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
		case ev.IsEscape():
			e.SetStatus("")
			return "", false, nil
		case ev.IsEnter():
			e.SetStatus("")
			return string(query), true, nil
		case ev.IsChar():
			if len(query) < maxQuery {
				query = append(query, ev.Rune)
			}
		}
	}
}

// Find runs an interactive incremental search over the rendered rows of
// the current buffer. Arrow keys step to the next or previous match,
// wrapping around. Enter keeps the cursor on the match and Escape puts it
// back.
func (e *Editor) Find() error {
	b := e.Current()
	vp := b.vp
	saved := vp.Save()
	defer b.rows.ClearMatch()

	var query []rune
	lastMatch := -1
	for {
		e.SetStatus("Search: %s (Use ESC/Arrows/Enter)", string(query))
		if err := e.refresh(); err != nil {
			return err
		}

		ev, err := e.readKey()
		if err != nil {
			return err
		}

		step := 0
		switch {
		case ev.IsErase():
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
			lastMatch = -1
		case ev.IsEscape(), ev.IsEnter():
			if ev.IsEscape() {
				vp.Restore(saved)
			}
			e.SetStatus("")
			return nil
		case ev.Key == key.KeyRight || ev.Key == key.KeyDown:
			step = 1
		case ev.Key == key.KeyLeft || ev.Key == key.KeyUp:
			step = -1
		case ev.IsChar():
			if len(query) < maxQuery {
				query = append(query, ev.Rune)
				lastMatch = -1
			}
		}

		if lastMatch == -1 {
			step = 1
		}
		if step == 0 || len(query) == 0 {
			continue
		}

		row, offset, found := e.search(string(query), lastMatch, step)
		b.rows.ClearMatch()
		if !found {
			continue
		}
		lastMatch = row
		b.rows.SetMatch(row, offset, len(query))

		raw := b.rows.Row(row).Raw()
		vp.ScrollTo(b.rows.Tabs().RawColumn(raw, offset), row)
	}
}

// search looks for query in the rendered rows, starting after row from and
// moving by step with wrap-around. It returns the row and the rendered
// column of the first match.
func (e *Editor) search(query string, from, step int) (row, offset int, ok bool) {
	rows := e.Current().rows
	n := rows.Len()
	current := from
	for i := 0; i < n; i++ {
		current += step
		switch {
		case current < 0:
			current = n - 1
		case current >= n:
			current = 0
		}

		rendered := string(rows.Rendered(current))
		if at := strings.Index(rendered, query); at >= 0 {
			return current, utf8.RuneCountInString(rendered[:at]), true
		}
	}
	return 0, 0, false
}
