package decoder

import (
	"fmt"

	"github.com/dshills/terminput/internal/input/key"
	"github.com/dshills/terminput/internal/input/mouse"
)

// Kind identifies the variant of a decoded event.
type Kind uint8

const (
	// KindKey is a keyboard event.
	KindKey Kind = iota
	// KindMouse is a mouse event.
	KindMouse
	// KindFocus is a focus gained/lost notification.
	KindFocus
	// KindPaste is a bracketed-paste text block.
	KindPaste
	// KindResize is a terminal size report.
	KindResize
	// KindCursor is a cursor-position report (a terminal reply, not
	// user input).
	KindCursor
	// KindUnknown is a malformed or unrecognized sequence, consumed and
	// carried verbatim.
	KindUnknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindFocus:
		return "focus"
	case KindPaste:
		return "paste"
	case KindResize:
		return "resize"
	case KindCursor:
		return "cursor"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Event is one decoded input event. Kind selects the variant; only the
// fields belonging to that variant are meaningful.
type Event struct {
	Kind Kind

	// Key is set for KindKey.
	Key key.Event

	// Mouse is set for KindMouse.
	Mouse mouse.Event

	// Gained is set for KindFocus: true for focus gained.
	Gained bool

	// Text is set for KindPaste.
	Text string

	// Rows and Cols are set for KindResize.
	Rows, Cols int

	// Row and Col are set for KindCursor (1-based, as reported).
	Row, Col int

	// Raw is set for KindUnknown: the consumed byte span.
	Raw []byte
}

func keyEvent(ev key.Event) Event {
	return Event{Kind: KindKey, Key: ev}
}

func mouseEvent(ev mouse.Event) Event {
	return Event{Kind: KindMouse, Mouse: ev}
}

func focusEvent(gained bool) Event {
	return Event{Kind: KindFocus, Gained: gained}
}

func pasteEvent(text string) Event {
	return Event{Kind: KindPaste, Text: text}
}

func resizeEvent(rows, cols int) Event {
	return Event{Kind: KindResize, Rows: rows, Cols: cols}
}

func cursorEvent(row, col int) Event {
	return Event{Kind: KindCursor, Row: row, Col: col}
}

// unknownEvent copies raw: the span aliases the decoder's buffer, which is
// reused after consumption.
func unknownEvent(raw []byte) Event {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Event{Kind: KindUnknown, Raw: cp}
}

// String returns a compact human-readable form of the event.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key " + e.Key.String()
	case KindMouse:
		return "mouse " + e.Mouse.String()
	case KindFocus:
		if e.Gained {
			return "focus gained"
		}
		return "focus lost"
	case KindPaste:
		return fmt.Sprintf("paste %d bytes", len(e.Text))
	case KindResize:
		return fmt.Sprintf("resize %dx%d", e.Cols, e.Rows)
	case KindCursor:
		return fmt.Sprintf("cursor (%d,%d)", e.Row, e.Col)
	case KindUnknown:
		return fmt.Sprintf("unknown %q", e.Raw)
	default:
		return e.Kind.String()
	}
}
