package decoder

import (
	"strings"
	"testing"

	"github.com/dshills/terminput/internal/input/key"
)

func TestBracketedPaste(t *testing.T) {
	events := decodeAll([]byte("\x1b[200~hello world\x1b[201~"))
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %v", events)
	}
	if events[0].Kind != KindPaste || events[0].Text != "hello world" {
		t.Errorf("got %v, want Paste(hello world)", events[0])
	}
}

func TestPasteResumesNormalParsing(t *testing.T) {
	events := decodeAll([]byte("\x1b[200~text\x1b[201~\x1b[A"))
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %v", events)
	}
	if events[0].Kind != KindPaste || events[0].Text != "text" {
		t.Errorf("got %v", events[0])
	}
	if events[1].Kind != KindKey || events[1].Key.Key != key.KeyUp {
		t.Errorf("expected Up after paste, got %v", events[1])
	}
}

func TestPasteEmpty(t *testing.T) {
	events := decodeAll([]byte("\x1b[200~\x1b[201~"))
	if len(events) != 1 || events[0].Kind != KindPaste || events[0].Text != "" {
		t.Fatalf("expected one empty Paste, got %v", events)
	}
}

func TestPasteContainsEscapes(t *testing.T) {
	// Escape sequences inside a paste are not reinterpreted.
	text := "line1\n\x1b[Aline2\x1b[<0;1;1M"
	input := "\x1b[200~" + text + "\x1b[201~"
	events := decodeAll([]byte(input))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %v", events)
	}
	if events[0].Kind != KindPaste || events[0].Text != text {
		t.Errorf("paste text = %q, want %q", events[0].Text, text)
	}
}

func TestPasteEndMarkerSplitAcrossFeeds(t *testing.T) {
	d := New()

	if events := drain(d, []byte("\x1b[200~hello\x1b[20")); len(events) != 0 {
		t.Fatalf("unexpected events: %v", events)
	}
	if d.Mode() != ModePaste {
		t.Fatalf("mode = %v, want paste", d.Mode())
	}

	events := drain(d, []byte("1~"))
	if len(events) != 1 || events[0].Kind != KindPaste {
		t.Fatalf("expected paste after marker completes, got %v", events)
	}
	if events[0].Text != "hello" {
		t.Errorf("text = %q, want %q", events[0].Text, "hello")
	}
}

func TestPasteFalseEndMarkerPrefix(t *testing.T) {
	// "\x1b[20x" looks like the end marker for four bytes, then diverges
	// and must be kept as paste text.
	d := New()
	drain(d, []byte("\x1b[200~ab\x1b[20"))
	events := drain(d, []byte("xcd\x1b[201~"))
	if len(events) != 1 || events[0].Kind != KindPaste {
		t.Fatalf("expected paste, got %v", events)
	}
	if want := "ab\x1b[20xcd"; events[0].Text != want {
		t.Errorf("text = %q, want %q", events[0].Text, want)
	}
}

func TestPasteNoPartialEvents(t *testing.T) {
	d := New()
	drain(d, []byte("\x1b[200~"))
	for i := 0; i < 100; i++ {
		if events := drain(d, []byte("chunk ")); len(events) != 0 {
			t.Fatalf("partial paste emitted events at chunk %d: %v", i, events)
		}
	}
	events := drain(d, []byte("\x1b[201~"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if want := strings.Repeat("chunk ", 100); events[0].Text != want {
		t.Errorf("text length = %d, want %d", len(events[0].Text), len(want))
	}
}

func TestPasteResyncCap(t *testing.T) {
	d := New()
	d.SetMaxPending(32)
	drain(d, []byte("\x1b[200~"))

	d.Feed([]byte(strings.Repeat("x", 64)))
	ev, ok := d.Next()
	if !ok {
		t.Fatal("expected forced resync")
	}
	if ev.Kind != KindUnknown {
		t.Fatalf("expected Unknown, got %v", ev)
	}
	if d.Mode() != ModeNormal {
		t.Errorf("mode = %v, want normal after resync", d.Mode())
	}
}

func TestPasteTextOwned(t *testing.T) {
	// The emitted text must not alias the decoder's buffers.
	d := New()
	events := drain(d, []byte("\x1b[200~abc\x1b[201~"))
	if len(events) != 1 {
		t.Fatal("expected paste")
	}
	drain(d, []byte("\x1b[200~zzz\x1b[201~"))
	if events[0].Text != "abc" {
		t.Errorf("paste text mutated: %q", events[0].Text)
	}
}
