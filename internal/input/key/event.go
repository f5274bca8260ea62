package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Repeat is true when the terminal reported the press as an
	// auto-repeat rather than a fresh keystroke.
	Repeat bool
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModSuper|ModHyper|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// Equal reports whether two events describe the same keystroke,
// ignoring the repeat flag. Ctrl combinations compare case-insensitively:
// the wire encodes Ctrl+Q as an uppercase letter while key specifications
// conventionally write the lowercase form.
func (e Event) Equal(other Event) bool {
	if e.Key != other.Key || e.Modifiers != other.Modifiers {
		return false
	}
	if e.Key == KeyRune && e.Modifiers.HasCtrl() {
		return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
	}
	return e.Rune == other.Rune
}

// String returns a canonical string representation.
// Examples: "a", "A", "C-s", "Enter", "C-S-p"
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasSuper() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	// Only show Shift for non-character keys
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// VimString returns the event in Vim key notation, e.g. "<C-s>" or "a".
func (e Event) VimString() string {
	s := e.String()
	if e.IsRune() && e.Modifiers&(ModCtrl|ModAlt|ModSuper|ModMeta) == 0 && e.Rune != ' ' {
		return s
	}
	return "<" + s + ">"
}
