// Package input turns raw terminal bytes into key events.
//
// The terminal is put into raw mode (no echo, no line buffering, no signal
// keys, no CR to NL translation, no flow control, no output processing)
// with a read timeout of one tenth of a second. A read that times out
// without a byte becomes an idle tick, which the editor uses for periodic
// work.
//
// # Escape Sequences
//
// After ESC the decoder looks ahead for the sequences terminals send for
// cursor and editing keys:
//
//   - ESC [ A|B|C|D       Up, Down, Right, Left
//   - ESC [ H|F, ESC O H|F Home, End
//   - ESC [ 1|7 ~, 4|8 ~  Home, End
//   - ESC [ 3|5|6 ~       Delete, PageUp, PageDown
//
// Anything else, or a timeout in the middle of a sequence, decodes as a bare
// Escape. Decode failures are reported through an optional callback and are
// never fatal.
//
// # Usage
//
//	tty, err := input.OpenTTY(os.Stdin)
//	if err != nil {
//	    return err
//	}
//	if err := tty.EnableRawMode(); err != nil {
//	    return err
//	}
//	defer tty.Restore()
//
//	dec := input.NewDecoder(tty)
//	ev, err := dec.ReadEvent()
package input
