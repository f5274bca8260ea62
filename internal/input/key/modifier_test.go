package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift

	if !m.HasCtrl() {
		t.Error("expected HasCtrl to be true")
	}
	if !m.HasShift() {
		t.Error("expected HasShift to be true")
	}
	if m.HasAlt() {
		t.Error("expected HasAlt to be false")
	}
	if m.HasSuper() {
		t.Error("expected HasSuper to be false")
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModAlt)
	if !m.HasCtrl() || !m.HasAlt() {
		t.Errorf("expected Ctrl+Alt, got %v", m)
	}

	m = m.Without(ModCtrl)
	if m.HasCtrl() {
		t.Error("expected Ctrl removed")
	}
	if !m.HasAlt() {
		t.Error("expected Alt retained")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModSuper, "Super"},
		{ModHyper, "Hyper"},
		{ModMeta, "Meta"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestFromXterm(t *testing.T) {
	tests := []struct {
		param int
		want  Modifier
	}{
		{0, ModNone},
		{1, ModNone},
		{2, ModShift},
		{3, ModAlt},
		{4, ModShift | ModAlt},
		{5, ModCtrl},
		{6, ModShift | ModCtrl},
		{7, ModAlt | ModCtrl},
		{8, ModShift | ModAlt | ModCtrl},
		{9, ModSuper},
	}

	for _, tt := range tests {
		if got := FromXterm(tt.param); got != tt.want {
			t.Errorf("FromXterm(%d) = %v, want %v", tt.param, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"control", ModCtrl},
		{"c", ModCtrl},
		{"alt", ModAlt},
		{"option", ModAlt},
		{"shift", ModShift},
		{"super", ModSuper},
		{"cmd", ModSuper},
		{"meta", ModMeta},
		{"hyper", ModHyper},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec string
		want Modifier
	}{
		{"Ctrl+Alt", ModCtrl | ModAlt},
		{"C-A", ModCtrl | ModAlt},
		{"shift", ModShift},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.spec); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}
