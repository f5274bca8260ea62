package key

import (
	"errors"
	"testing"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
		wantMods Modifier
	}{
		{"a", 'a', ModNone},
		{"A", 'A', ModShift},
		{"1", '1', ModNone},
		{"@", '@', ModNone},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if event.Key != KeyRune || event.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
		}
		if event.Modifiers != tt.wantMods {
			t.Errorf("Parse(%q) mods = %v, want %v", tt.spec, event.Modifiers, tt.wantMods)
		}
	}
}

func TestParseSpecialKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"Enter", KeyEnter},
		{"escape", KeyEscape},
		{"Tab", KeyTab},
		{"F5", KeyF5},
		{"PageUp", KeyPageUp},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if event.Key != tt.want {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.want)
		}
	}
}

func TestParseModifierStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMods Modifier
	}{
		{"Ctrl+S", KeyRune, 's', ModCtrl},
		{"Alt+F4", KeyF4, 0, ModAlt},
		{"Ctrl+Shift+P", KeyRune, 'p', ModCtrl | ModShift},
		{"Ctrl+Enter", KeyEnter, 0, ModCtrl},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey || event.Rune != tt.wantRune || event.Modifiers != tt.wantMods {
			t.Errorf("Parse(%q) = %+v, want key=%v rune=%q mods=%v",
				tt.spec, event, tt.wantKey, tt.wantRune, tt.wantMods)
		}
	}
}

func TestParseVimStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMods Modifier
	}{
		{"<C-s>", KeyRune, 's', ModCtrl},
		{"<A-f>", KeyRune, 'f', ModAlt},
		{"<C-S-p>", KeyRune, 'p', ModCtrl | ModShift},
		{"<CR>", KeyEnter, 0, ModNone},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<BS>", KeyBackspace, 0, ModNone},
		{"<Space>", KeyRune, ' ', ModNone},
		{"<lt>", KeyRune, '<', ModNone},
		{"<C-Up>", KeyUp, 0, ModCtrl},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey || event.Rune != tt.wantRune || event.Modifiers != tt.wantMods {
			t.Errorf("Parse(%q) = %+v, want key=%v rune=%q mods=%v",
				tt.spec, event, tt.wantKey, tt.wantRune, tt.wantMods)
		}
	}
}

func TestParseBareDashStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMods Modifier
	}{
		{"C-q", KeyRune, 'q', ModCtrl},
		{"A-F4", KeyF4, 0, ModAlt},
		{"C-S-p", KeyRune, 'p', ModCtrl | ModShift},
		{"M-x", KeyRune, 'x', ModMeta},
		{"C-Up", KeyUp, 0, ModCtrl},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey || event.Rune != tt.wantRune || event.Modifiers != tt.wantMods {
			t.Errorf("Parse(%q) = %+v, want key=%v rune=%q mods=%v",
				tt.spec, event, tt.wantKey, tt.wantRune, tt.wantMods)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Bogus+x", ErrInvalidSpec},
		{"<Z-x>", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	specs := []string{"a", "<C-s>", "<Enter>", "<A-x>"}

	for _, spec := range specs {
		event, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", spec, err)
		}
		formatted := FormatSpec(event)
		again, err := Parse(formatted)
		if err != nil {
			t.Fatalf("Parse(FormatSpec) %q error: %v", formatted, err)
		}
		if !event.Equal(again) {
			t.Errorf("round trip of %q: %+v != %+v", spec, event, again)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid spec")
		}
	}()
	MustParse("not a key at all")
}
