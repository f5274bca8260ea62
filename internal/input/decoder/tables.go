package decoder

import "github.com/dshills/terminput/internal/input/key"

// Bracketed paste marker parameters.
const (
	pasteStartParam = 200
	pasteEndParam   = 201
)

// controlKey maps a C0 control byte (or DEL) to a key event. Bytes
// 0x01-0x1A and 0x1C-0x1F use the standard Ctrl encoding: the letter is
// byte + 0x40.
func controlKey(b byte, mods key.Modifier) key.Event {
	switch b {
	case 0x00:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	case 0x08:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case 0x09:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case 0x0A, 0x0D:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case 0x1B:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case 0x7F:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	default:
		return key.NewRuneEvent(rune(b)+0x40, mods.With(key.ModCtrl))
	}
}

// tildeKeys maps the first parameter of "ESC [ <n> ~" sequences to keys.
// Function keys follow the canonical xterm/VT220 numbering: 11-15 are
// F1-F5, 17-21 are F6-F10, 23-24 are F11-F12 (16 and 22 are unassigned).
var tildeKeys = map[int]key.Key{
	1:  key.KeyHome,
	2:  key.KeyInsert,
	3:  key.KeyDelete,
	4:  key.KeyEnd,
	5:  key.KeyPageUp,
	6:  key.KeyPageDown,
	7:  key.KeyHome, // rxvt
	8:  key.KeyEnd,  // rxvt
	11: key.KeyF1,
	12: key.KeyF2,
	13: key.KeyF3,
	14: key.KeyF4,
	15: key.KeyF5,
	17: key.KeyF6,
	18: key.KeyF7,
	19: key.KeyF8,
	20: key.KeyF9,
	21: key.KeyF10,
	23: key.KeyF11,
	24: key.KeyF12,
}

// ss3Keys maps the byte following "ESC O" to keys: VT100 PF keys,
// application-mode arrows and Home/End, and the application keypad.
var ss3Keys = map[byte]key.Key{
	'P': key.KeyF1,
	'Q': key.KeyF2,
	'R': key.KeyF3,
	'S': key.KeyF4,
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
	'M': key.KeyKPEnter,
	'j': key.KeyKPMultiply,
	'k': key.KeyKPAdd,
	'm': key.KeyKPSubtract,
	'n': key.KeyKPDecimal,
	'o': key.KeyKPDivide,
	'p': key.KeyKP0,
	'q': key.KeyKP1,
	'r': key.KeyKP2,
	's': key.KeyKP3,
	't': key.KeyKP4,
	'u': key.KeyKP5,
	'v': key.KeyKP6,
	'w': key.KeyKP7,
	'x': key.KeyKP8,
	'y': key.KeyKP9,
}

// arrowKeys maps CSI final bytes A-D to arrow keys.
var arrowKeys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
}
