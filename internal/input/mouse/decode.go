package mouse

import "github.com/dshills/terminput/internal/input/key"

// Bit layout of the button integer, common to X10 and SGR reports.
const (
	bitsButton  = 0x03
	bitShift    = 0x04
	bitAlt      = 0x08
	bitCtrl     = 0x10
	bitMotion   = 0x20
	bitWheel    = 0x40
	bitExtended = 0x80

	// In X10 reports a low-bits value of 3 marks a release; the button
	// identity is not transmitted.
	x10Release = 0x03
)

// DecodeReport decodes the shared button integer used by both the X10 and
// SGR mouse encodings. release indicates an out-of-band release marker
// (SGR final byte 'm'); X10 releases are detected from the low bits.
//
// Classification priority: wheel, then drag (motion), then release, then
// press.
func DecodeReport(btn int, release bool) (Button, Action, key.Modifier) {
	var mods key.Modifier
	if btn&bitShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if btn&bitAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if btn&bitCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}

	low := btn & bitsButton

	var button Button
	switch {
	case btn&bitWheel != 0:
		button = ButtonWheelUp + Button(low)
	case btn&bitExtended != 0:
		button = Button8 + Button(low)
	case low == x10Release && !release:
		// X10 encodes release as low bits 3 with no button identity.
		button = ButtonNone
		release = true
	default:
		button = ButtonLeft + Button(low)
	}

	var action Action
	switch {
	case btn&bitWheel != 0:
		action = ActionWheel
	case btn&bitMotion != 0:
		action = ActionDrag
	case release:
		action = ActionRelease
	default:
		action = ActionPress
	}

	return button, action, mods
}

// FromX10 decodes a legacy X10 report: three raw bytes following "ESC [ M",
// each biased by +32, with 1-based coordinates.
func FromX10(b, x, y byte) Event {
	button, action, mods := DecodeReport(int(b)-32, false)
	return Event{
		X:         int(x) - 32 - 1,
		Y:         int(y) - 32 - 1,
		Button:    button,
		Action:    action,
		Modifiers: mods,
	}
}

// FromSGR decodes an SGR report "ESC [ < btn ; x ; y M/m". Coordinates are
// 1-based decimal parameters; release is signalled by the final byte 'm'.
func FromSGR(btn, x, y int, release bool) Event {
	button, action, mods := DecodeReport(btn, release)
	return Event{
		X:         x - 1,
		Y:         y - 1,
		Button:    button,
		Action:    action,
		Modifiers: mods,
	}
}
