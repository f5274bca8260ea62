package mouse

import (
	"fmt"

	"github.com/dshills/terminput/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button (X10 release reports).
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonWheelUp indicates scroll wheel up.
	ButtonWheelUp
	// ButtonWheelDown indicates scroll wheel down.
	ButtonWheelDown
	// ButtonWheelLeft indicates horizontal scroll left.
	ButtonWheelLeft
	// ButtonWheelRight indicates horizontal scroll right.
	ButtonWheelRight
	// Button8 through Button11 are the extended button set
	// (bit 0x80 in the wire report).
	Button8
	Button9
	Button10
	Button11
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	case ButtonWheelLeft:
		return "wheel-left"
	case ButtonWheelRight:
		return "wheel-right"
	case Button8:
		return "button8"
	case Button9:
		return "button9"
	case Button10:
		return "button10"
	case Button11:
		return "button11"
	default:
		return "none"
	}
}

// IsWheel returns true if this is a scroll wheel button.
func (b Button) IsWheel() bool {
	return b >= ButtonWheelUp && b <= ButtonWheelRight
}

// ButtonFromName returns the button with the given String name.
func ButtonFromName(name string) (Button, bool) {
	for b := ButtonNone; b <= Button11; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return ButtonNone, false
}

// Action represents the class of mouse event.
type Action uint8

const (
	// ActionPress indicates a button press.
	ActionPress Action = iota
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionDrag indicates movement with a button held.
	ActionDrag
	// ActionWheel indicates scroll wheel motion.
	ActionWheel
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionDrag:
		return "drag"
	case ActionWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// ActionFromName returns the action with the given String name.
func ActionFromName(name string) (Action, bool) {
	for a := ActionPress; a <= ActionWheel; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionPress, false
}

// Event represents a mouse input event.
type Event struct {
	// X and Y are 0-based screen coordinates.
	X int
	Y int

	// Button is the mouse button involved.
	Button Button

	// Action is the class of event.
	Action Action

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier
}

// String returns a compact representation like "press left (4,9)".
func (e Event) String() string {
	if e.Modifiers.IsEmpty() {
		return fmt.Sprintf("%s %s (%d,%d)", e.Action, e.Button, e.X, e.Y)
	}
	return fmt.Sprintf("%s %s+%s (%d,%d)", e.Action, e.Modifiers, e.Button, e.X, e.Y)
}
