package decoder

import (
	"unicode/utf8"

	"github.com/dshills/terminput/internal/input/key"
)

// Mode is the decoder's current parse state. Exactly one mode is active at
// a time; ModeNormal is both the initial state and the state returned to
// after every emitted event.
type Mode uint8

const (
	// ModeNormal means no partial sequence is pending.
	ModeNormal Mode = iota
	// ModeEscape means a lone ESC (or ESC plus a partial Alt rune) is
	// buffered.
	ModeEscape
	// ModeCSI means an unterminated "ESC [" sequence is buffered.
	ModeCSI
	// ModeOSC means an unterminated "ESC ]" sequence is buffered.
	ModeOSC
	// ModeSS3 means a lone "ESC O" is buffered.
	ModeSS3
	// ModePaste means bracketed paste is active.
	ModePaste
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEscape:
		return "escape"
	case ModeCSI:
		return "csi"
	case ModeOSC:
		return "osc"
	case ModeSS3:
		return "ss3"
	case ModePaste:
		return "paste"
	default:
		return "invalid"
	}
}

// DefaultMaxPending is the default cap on bytes retained while waiting for
// a sequence terminator. A peer that never terminates a sequence would
// otherwise grow the buffer without bound.
const DefaultMaxPending = 32 * 1024

// compactThreshold is the consumed-prefix size past which the buffer is
// shifted back to offset zero.
const compactThreshold = 4096

// Decoder is a streaming terminal-input decoder. It owns all unconsumed
// bytes and the current parse mode across calls. Not safe for concurrent
// use.
type Decoder struct {
	buf []byte
	off int

	mode  Mode
	paste []byte

	maxPending int
}

// New creates a decoder in ModeNormal with the default pending cap.
func New() *Decoder {
	return &Decoder{maxPending: DefaultMaxPending}
}

// SetMaxPending sets the cap on bytes retained while a sequence is
// incomplete. Values < 1 restore the default.
func (d *Decoder) SetMaxPending(n int) {
	if n < 1 {
		n = DefaultMaxPending
	}
	d.maxPending = n
}

// Mode returns the current parse mode.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Pending returns the number of buffered bytes not yet turned into events,
// including any partially accumulated paste text.
func (d *Decoder) Pending() int {
	return len(d.buf) - d.off + len(d.paste)
}

// Reset discards all buffered bytes and partial state.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
	d.off = 0
	d.paste = d.paste[:0]
	d.mode = ModeNormal
}

// Feed appends a chunk of raw bytes. It never produces events itself;
// call Next until it reports no more.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// pending returns the unconsumed view of the buffer.
func (d *Decoder) pending() []byte {
	return d.buf[d.off:]
}

// consume removes n bytes from the front of the buffer. The consumed
// prefix is reclaimed lazily to keep consume cheap.
func (d *Decoder) consume(n int) {
	d.off += n
	if d.off >= len(d.buf) {
		d.buf = d.buf[:0]
		d.off = 0
		return
	}
	if d.off > compactThreshold && d.off*2 >= len(d.buf) {
		d.buf = append(d.buf[:0], d.buf[d.off:]...)
		d.off = 0
	}
}

// Next returns the next complete event. ok is false when more bytes are
// needed; in that case nothing has been consumed and all buffered bytes
// are retained.
func (d *Decoder) Next() (ev Event, ok bool) {
	for {
		if d.mode == ModePaste {
			if ev, ok := d.nextPaste(); ok {
				return ev, true
			}
			return d.incomplete()
		}

		ev, n, hasEvent := d.decodeOne()
		if n > 0 {
			d.consume(n)
		}
		if hasEvent {
			d.mode = ModeNormal
			return ev, true
		}
		if n == 0 {
			return d.incomplete()
		}
		// Bytes consumed without an event (paste start): decode again.
	}
}

// incomplete reports "need more bytes", enforcing the pending cap: past it
// the buffered prefix is abandoned as one Unknown event and the decoder
// resyncs to ModeNormal.
func (d *Decoder) incomplete() (Event, bool) {
	if d.Pending() <= d.maxPending {
		return Event{}, false
	}
	raw := make([]byte, 0, d.Pending())
	raw = append(raw, d.paste...)
	raw = append(raw, d.pending()...)
	d.Reset()
	return Event{Kind: KindUnknown, Raw: raw}, true
}

// FlushEscape resolves a buffered lone ESC as an Escape keypress. The
// decoder itself is purely byte-driven and cannot distinguish a standalone
// Escape from the start of a sequence; the byte source calls this after
// its read timeout expires with exactly one ESC byte pending.
func (d *Decoder) FlushEscape() (Event, bool) {
	p := d.pending()
	if d.mode != ModePaste && len(p) == 1 && p[0] == 0x1B {
		d.consume(1)
		d.mode = ModeNormal
		return keyEvent(key.NewSpecialEvent(key.KeyEscape, key.ModNone)), true
	}
	return Event{}, false
}

// decodeOne attempts to decode one event from the front of the buffer.
// It returns the event, the number of bytes consumed, and whether an event
// was produced. n == 0 means incomplete (and d.mode records what is
// pending); n > 0 with no event means a mode switch consumed bytes.
func (d *Decoder) decodeOne() (Event, int, bool) {
	p := d.pending()
	if len(p) == 0 {
		d.mode = ModeNormal
		return Event{}, 0, false
	}

	b := p[0]
	switch {
	case b == 0x1B:
		return d.decodeEscape(p)
	case b < 0x20 || b == 0x7F:
		return keyEvent(controlKey(b, key.ModNone)), 1, true
	case b < 0x80:
		return keyEvent(key.NewRuneEvent(rune(b), key.ModNone)), 1, true
	default:
		return d.decodeRune(p, 0, key.ModNone)
	}
}

// decodeRune decodes a UTF-8 sequence starting at p[start], attaching mods
// (used for Alt-prefixed runes). Incomplete sequences consume nothing; an
// invalid lead byte is consumed alone as Unknown so the bytes after it are
// reclassified rather than swallowed.
func (d *Decoder) decodeRune(p []byte, start int, mods key.Modifier) (Event, int, bool) {
	lead := p[start]
	n := utf8SeqLen(lead)
	if n == 0 {
		// Stray continuation byte or invalid lead: consume it.
		return unknownEvent(p[:start+1]), start + 1, true
	}
	if len(p) < start+n {
		if start > 0 {
			d.mode = ModeEscape
		} else {
			d.mode = ModeNormal
		}
		return Event{}, 0, false
	}
	r, size := utf8.DecodeRune(p[start : start+n])
	if r == utf8.RuneError && size <= 1 {
		// Only the lead byte is known bad; what follows may be a real
		// keystroke.
		return unknownEvent(p[:start+1]), start + 1, true
	}
	return keyEvent(key.NewRuneEvent(r, mods)), start + n, true
}

// decodeEscape routes an ESC-prefixed buffer by its second byte.
func (d *Decoder) decodeEscape(p []byte) (Event, int, bool) {
	if len(p) == 1 {
		// A lone ESC is indistinguishable from the start of a longer
		// sequence; wait for more bytes (or a FlushEscape).
		d.mode = ModeEscape
		return Event{}, 0, false
	}

	b := p[1]
	switch b {
	case '[':
		return d.decodeCSI(p)
	case ']':
		return d.decodeOSC(p)
	case 'O':
		return d.decodeSS3(p)
	}

	// Alt+key synthesis: reinterpret the byte after ESC through the
	// normal control/ASCII/UTF-8 logic with the Alt modifier added.
	switch {
	case b < 0x20 || b == 0x7F:
		return keyEvent(controlKey(b, key.ModAlt)), 2, true
	case b < 0x80:
		return keyEvent(key.NewRuneEvent(rune(b), key.ModAlt)), 2, true
	default:
		return d.decodeRune(p, 1, key.ModAlt)
	}
}

// decodeOSC consumes an OSC sequence terminated by BEL or ST (ESC \).
// OSC payloads are terminal replies, not user input; they surface as
// Unknown so the caller can log them, and never stall the stream.
func (d *Decoder) decodeOSC(p []byte) (Event, int, bool) {
	for i := 2; i < len(p); i++ {
		switch p[i] {
		case 0x07: // BEL
			return unknownEvent(p[:i+1]), i + 1, true
		case 0x1B:
			if i+1 >= len(p) {
				d.mode = ModeOSC
				return Event{}, 0, false
			}
			if p[i+1] == '\\' { // ST
				return unknownEvent(p[:i+2]), i + 2, true
			}
			// ESC starting something else: abandon the OSC prefix
			// and resync at the ESC.
			return unknownEvent(p[:i]), i, true
		}
	}
	d.mode = ModeOSC
	return Event{}, 0, false
}

// decodeSS3 handles "ESC O <byte>" function, navigation, and application
// keypad keys.
func (d *Decoder) decodeSS3(p []byte) (Event, int, bool) {
	if len(p) < 3 {
		d.mode = ModeSS3
		return Event{}, 0, false
	}
	if k, found := ss3Keys[p[2]]; found {
		return keyEvent(key.NewSpecialEvent(k, key.ModNone)), 3, true
	}
	return unknownEvent(p[:3]), 3, true
}

// utf8SeqLen returns the byte length of the UTF-8 sequence announced by
// the lead byte, or 0 if the byte cannot start a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0 // continuation byte
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	default:
		return 0
	}
}
