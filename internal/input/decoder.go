package input

import (
	"unicode/utf8"

	"github.com/dshills/kilua/internal/input/key"
)

// ByteSource delivers single bytes with a timeout. ok is false when the
// timeout elapsed without input.
type ByteSource interface {
	ReadByteTimeout() (b byte, ok bool, err error)
}

// Decoder reads key events from a ByteSource.
type Decoder struct {
	src ByteSource

	// OnDecodeError, when set, is called for input that degraded to Escape
	// or to the replacement character.
	OnDecodeError func(*DecodeError)
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadEvent returns the next key event. A timeout with no input returns an
// idle event. Only read failures are returned as errors.
func (d *Decoder) ReadEvent() (key.Event, error) {
	b, ok, err := d.src.ReadByteTimeout()
	if err != nil {
		return key.Event{}, err
	}
	if !ok {
		return key.Idle(), nil
	}

	switch {
	case b == 0x1b:
		return d.escape()
	case b >= utf8.RuneSelf:
		return d.utf8(b)
	default:
		return key.FromByte(b), nil
	}
}

// escape resolves the bytes following ESC.
func (d *Decoder) escape() (key.Event, error) {
	esc := key.NewSpecialEvent(key.KeyEscape, key.ModNone)
	seq := []byte{0x1b}

	next := func() (byte, bool, error) {
		b, ok, err := d.src.ReadByteTimeout()
		if ok {
			seq = append(seq, b)
		}
		return b, ok, err
	}

	b0, ok, err := next()
	if err != nil || !ok {
		return esc, err
	}
	b1, ok, err := next()
	if err != nil {
		return esc, err
	}
	if !ok {
		d.fail(seq, "incomplete sequence")
		return esc, nil
	}

	switch b0 {
	case '[':
		if b1 >= '0' && b1 <= '9' {
			b2, ok, err := next()
			if err != nil {
				return esc, err
			}
			if !ok || b2 != '~' {
				d.fail(seq, "expected ~")
				return esc, nil
			}
			if k, found := tildeKeys[b1]; found {
				return key.NewSpecialEvent(k, key.ModNone), nil
			}
		} else if k, found := csiKeys[b1]; found {
			return key.NewSpecialEvent(k, key.ModNone), nil
		}
	case 'O':
		if k, found := ss3Keys[b1]; found {
			return key.NewSpecialEvent(k, key.ModNone), nil
		}
	}

	d.fail(seq, "unknown sequence")
	return esc, nil
}

var csiKeys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
}

var tildeKeys = map[byte]key.Key{
	'1': key.KeyHome,
	'3': key.KeyDelete,
	'4': key.KeyEnd,
	'5': key.KeyPageUp,
	'6': key.KeyPageDown,
	'7': key.KeyHome,
	'8': key.KeyEnd,
}

var ss3Keys = map[byte]key.Key{
	'H': key.KeyHome,
	'F': key.KeyEnd,
}

// utf8 assembles a multi-byte character starting with lead.
func (d *Decoder) utf8(lead byte) (key.Event, error) {
	buf := []byte{lead}
	for n := seqLen(lead); len(buf) < n; {
		b, ok, err := d.src.ReadByteTimeout()
		if err != nil {
			return key.Event{}, err
		}
		if !ok {
			break
		}
		buf = append(buf, b)
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		d.fail(buf, "invalid UTF-8")
	}
	return key.NewRuneEvent(r, key.ModNone), nil
}

// seqLen returns the encoded length announced by a UTF-8 lead byte, or 1
// for bytes that cannot start a sequence.
func seqLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func (d *Decoder) fail(seq []byte, reason string) {
	if d.OnDecodeError != nil {
		d.OnDecodeError(&DecodeError{Seq: append([]byte(nil), seq...), Reason: reason})
	}
}
