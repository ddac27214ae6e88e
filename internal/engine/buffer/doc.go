// Package buffer holds the text of one file as an ordered list of rows.
//
// Each Row keeps three views of the same line in lockstep:
//
//   - raw: the characters as stored in the file
//   - rendered: raw with tabs expanded to the next tab stop
//   - highlight: one syntax.Tag per rendered character
//
// Every RowStore mutation re-derives the rendered form and highlight of the
// rows it touches before returning, so callers never observe a row whose
// views disagree. Highlighting runs through a syntax.Highlighter, which may
// carry block comment state forward across any number of following rows.
//
// Basic usage:
//
//	rows := buffer.NewRowStore(buffer.WithHighlighter(syntax.New(def)))
//	if err := rows.Load(f); err != nil {
//	    return err
//	}
//	rows.InsertChar(0, 0, 'x')
//	rows.SplitRow(0, 1)
//	text := rows.Text()
//
// All operations are total: out of range positions are clamped or ignored.
// A RowStore is not safe for concurrent use; the editor drives it from a
// single goroutine.
package buffer
