package decoder

import (
	"github.com/dshills/terminput/internal/input/key"
	"github.com/dshills/terminput/internal/input/mouse"
)

// decodeCSI parses an "ESC [" sequence: scan to the final byte
// (0x40-0x7E), split parameters, dispatch. The X10 mouse form is a hard
// format exception: its 'M' final is followed by three raw bytes that must
// not go through the parameter parser.
func (d *Decoder) decodeCSI(p []byte) (Event, int, bool) {
	i := 2
	sgr := false
	if i < len(p) && p[i] == '<' {
		sgr = true
		i++
	}

	start := i
	for ; i < len(p); i++ {
		b := p[i]
		if b >= 0x40 && b <= 0x7E {
			break
		}
		if b == 0x1B {
			// A new escape inside an unterminated CSI: abandon the
			// malformed prefix, resync at the ESC.
			return unknownEvent(p[:i]), i, true
		}
	}
	if i == len(p) {
		d.mode = ModeCSI
		return Event{}, 0, false
	}

	final := p[i]
	span := i + 1

	// Legacy X10 mouse: "ESC [ M" with no parameters, then three raw
	// bytes (button, x, y), each biased by +32.
	if final == 'M' && !sgr && i == start {
		if len(p) < span+3 {
			d.mode = ModeCSI
			return Event{}, 0, false
		}
		ev := mouse.FromX10(p[span], p[span+1], p[span+2])
		return mouseEvent(ev), span + 3, true
	}

	params := splitParams(p[start:i])

	if sgr {
		if final == 'M' || final == 'm' {
			ev := mouse.FromSGR(paramAt(params, 0), paramAt(params, 1), paramAt(params, 2), final == 'm')
			return mouseEvent(ev), span, true
		}
		return unknownEvent(p[:span]), span, true
	}

	switch final {
	case 'A', 'B', 'C', 'D':
		mods := key.FromXterm(paramAt(params, 1))
		return keyEvent(key.NewSpecialEvent(arrowKeys[final], mods)), span, true

	case 'H':
		mods := key.FromXterm(paramAt(params, 1))
		return keyEvent(key.NewSpecialEvent(key.KeyHome, mods)), span, true

	case 'F':
		mods := key.FromXterm(paramAt(params, 1))
		return keyEvent(key.NewSpecialEvent(key.KeyEnd, mods)), span, true

	case 'Z': // backtab
		return keyEvent(key.NewSpecialEvent(key.KeyTab, key.ModShift)), span, true

	case '~':
		return d.decodeTilde(p, params, span)

	case 't':
		if paramAt(params, 0) == 8 {
			return resizeEvent(paramAt(params, 1), paramAt(params, 2)), span, true
		}
		return unknownEvent(p[:span]), span, true

	case 'R':
		return cursorEvent(paramDefault(params, 0, 1), paramDefault(params, 1, 1)), span, true

	case 'I':
		return focusEvent(true), span, true

	case 'O':
		return focusEvent(false), span, true

	default:
		return unknownEvent(p[:span]), span, true
	}
}

// decodeTilde handles "ESC [ <n> ~": navigation keys, function keys, and
// the bracketed paste markers.
func (d *Decoder) decodeTilde(p []byte, params []int, span int) (Event, int, bool) {
	n := paramAt(params, 0)

	switch n {
	case pasteStartParam:
		d.mode = ModePaste
		d.paste = d.paste[:0]
		return Event{}, span, false
	case pasteEndParam:
		// An end marker outside paste mode is a stray reply.
		return unknownEvent(p[:span]), span, true
	}

	k, found := tildeKeys[n]
	if !found {
		return unknownEvent(p[:span]), span, true
	}
	mods := key.FromXterm(paramAt(params, 1))
	return keyEvent(key.NewSpecialEvent(k, mods)), span, true
}

// maxParam caps a single CSI parameter. No recognized sequence carries
// values near it, and unbounded digit accumulation would overflow int and
// could surface a negative value in a typed event.
const maxParam = 65535

// splitParams splits the parameter bytes of a CSI sequence on ';' into
// integers. Empty or unparseable fields become 0; oversized fields clamp
// to maxParam.
func splitParams(raw []byte) []int {
	if len(raw) == 0 {
		return nil
	}
	params := make([]int, 0, 4)
	field := 0
	valid := true
	flush := func() {
		if !valid {
			field = 0
		}
		params = append(params, field)
		field = 0
		valid = true
	}
	for _, b := range raw {
		switch {
		case b == ';':
			flush()
		case b >= '0' && b <= '9':
			field = field*10 + int(b-'0')
			if field > maxParam {
				field = maxParam
			}
		default:
			valid = false
		}
	}
	flush()
	return params
}

// paramAt returns the parameter at index i, or 0 if absent.
func paramAt(params []int, i int) int {
	if i < len(params) {
		return params[i]
	}
	return 0
}

// paramDefault returns the parameter at index i, or def when it is absent
// or zero (the CSI convention for count-like parameters).
func paramDefault(params []int, i, def int) int {
	if i < len(params) && params[i] != 0 {
		return params[i]
	}
	return def
}
