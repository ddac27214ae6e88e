// Package cursor provides cursor, scroll and mark management for the editor.
//
// A Viewport holds the cursor position relative to the top left corner of
// the screen (CX, CY) and the scroll offsets (ColOff, RowOff). The absolute
// buffer position, the point, is (ColOff+CX, RowOff+CY).
//
// All movement goes through Move, which keeps the cursor on screen by
// scrolling and clamps the column to the length of the row it lands on.
// Higher level navigation (Warp, PageUp, the selection walk) is expressed in
// terms of Move so that scrolling behaves the same everywhere.
//
// Selection Model:
//
// The mark is an optional absolute position. The selection is the text
// between the point and the mark in reading order, with the characters at
// both ends included. The end of a row reads as '\n'.
package cursor
