// Package editor holds the editing state and the primitive operations that
// scripts drive.
//
// An Editor owns a list of buffers. Each Buffer pairs a row store with its
// own viewport, undo stack and file name. Every primitive acts on the
// current buffer:
//
//   - Text: Insert, Delete, Kill, At, Line
//   - Motion: Move, StartOfLine, EndOfLine, PageUp, PageDown, SetPoint
//   - Selection: SetMark, Selection, CutSelection
//   - Files: Open, Save
//   - Interaction: Prompt, Find, ReadKey
//
// Scripts are told about keys and file events through an EventSink. The
// Editor never draws by itself; Prompt and Find use a Screen to redraw and
// to read keys while they run their own small loops.
package editor
