package replay

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/terminput/internal/input/decoder"
	"github.com/dshills/terminput/internal/input/key"
	"github.com/dshills/terminput/internal/input/mouse"
)

// Transcript errors
var (
	ErrBadRecord = errors.New("malformed transcript record")
)

// Marshal encodes one event as a single JSON line (without the trailing
// newline).
func Marshal(ev decoder.Event) (string, error) {
	line, err := sjson.Set("", "kind", ev.Kind.String())
	if err != nil {
		return "", err
	}

	set := func(path string, value any) {
		if err != nil {
			return
		}
		line, err = sjson.Set(line, path, value)
	}

	switch ev.Kind {
	case decoder.KindKey:
		set("key", key.FormatSpec(ev.Key))
	case decoder.KindMouse:
		set("action", ev.Mouse.Action.String())
		set("button", ev.Mouse.Button.String())
		set("x", ev.Mouse.X)
		set("y", ev.Mouse.Y)
		if !ev.Mouse.Modifiers.IsEmpty() {
			set("mods", int(ev.Mouse.Modifiers))
		}
	case decoder.KindFocus:
		set("gained", ev.Gained)
	case decoder.KindPaste:
		set("text", ev.Text)
	case decoder.KindResize:
		set("rows", ev.Rows)
		set("cols", ev.Cols)
	case decoder.KindCursor:
		set("row", ev.Row)
		set("col", ev.Col)
	case decoder.KindUnknown:
		set("raw", base64.StdEncoding.EncodeToString(ev.Raw))
	default:
		return "", fmt.Errorf("%w: kind %v", ErrBadRecord, ev.Kind)
	}
	return line, err
}

// Unmarshal decodes one transcript line.
func Unmarshal(line string) (decoder.Event, error) {
	if !gjson.Valid(line) {
		return decoder.Event{}, fmt.Errorf("%w: not JSON", ErrBadRecord)
	}
	rec := gjson.Parse(line)

	switch kind := rec.Get("kind").String(); kind {
	case "key":
		kev, err := key.Parse(rec.Get("key").String())
		if err != nil {
			return decoder.Event{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		return decoder.Event{Kind: decoder.KindKey, Key: kev}, nil

	case "mouse":
		button, ok := mouse.ButtonFromName(rec.Get("button").String())
		if !ok {
			return decoder.Event{}, fmt.Errorf("%w: button %q", ErrBadRecord, rec.Get("button").String())
		}
		action, ok := mouse.ActionFromName(rec.Get("action").String())
		if !ok {
			return decoder.Event{}, fmt.Errorf("%w: action %q", ErrBadRecord, rec.Get("action").String())
		}
		return decoder.Event{Kind: decoder.KindMouse, Mouse: mouse.Event{
			X:         int(rec.Get("x").Int()),
			Y:         int(rec.Get("y").Int()),
			Button:    button,
			Action:    action,
			Modifiers: key.Modifier(rec.Get("mods").Int()),
		}}, nil

	case "focus":
		return decoder.Event{Kind: decoder.KindFocus, Gained: rec.Get("gained").Bool()}, nil

	case "paste":
		return decoder.Event{Kind: decoder.KindPaste, Text: rec.Get("text").String()}, nil

	case "resize":
		return decoder.Event{
			Kind: decoder.KindResize,
			Rows: int(rec.Get("rows").Int()),
			Cols: int(rec.Get("cols").Int()),
		}, nil

	case "cursor":
		return decoder.Event{
			Kind: decoder.KindCursor,
			Row:  int(rec.Get("row").Int()),
			Col:  int(rec.Get("col").Int()),
		}, nil

	case "unknown":
		raw, err := base64.StdEncoding.DecodeString(rec.Get("raw").String())
		if err != nil {
			return decoder.Event{}, fmt.Errorf("%w: raw: %v", ErrBadRecord, err)
		}
		return decoder.Event{Kind: decoder.KindUnknown, Raw: raw}, nil

	default:
		return decoder.Event{}, fmt.Errorf("%w: kind %q", ErrBadRecord, kind)
	}
}

// Writer appends transcript lines to an underlying writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a transcript writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write records one event.
func (w *Writer) Write(ev decoder.Event) error {
	line, err := Marshal(ev)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w.w, line+"\n")
	return err
}

// Reader reads transcript lines from an underlying reader.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader creates a transcript reader.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	// Paste events can be large; allow lines well beyond the scanner
	// default.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{sc: sc}
}

// Read returns the next event, or io.EOF when the transcript is
// exhausted. Blank lines are skipped.
func (r *Reader) Read() (decoder.Event, error) {
	for r.sc.Scan() {
		line := r.sc.Text()
		if line == "" {
			continue
		}
		return Unmarshal(line)
	}
	if err := r.sc.Err(); err != nil {
		return decoder.Event{}, err
	}
	return decoder.Event{}, io.EOF
}

// ReadAll returns every remaining event in the transcript.
func (r *Reader) ReadAll() ([]decoder.Event, error) {
	var events []decoder.Event
	for {
		ev, err := r.Read()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}
