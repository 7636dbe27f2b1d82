package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.HasCtrl() {
		t.Error("expected ctrl")
	}
	if !m.HasShift() {
		t.Error("expected shift")
	}
	if m.HasAlt() {
		t.Error("unexpected alt")
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModAlt)
	if m != ModCtrl|ModAlt {
		t.Errorf("With = %v, want ctrl|alt", m)
	}
	m = m.Without(ModCtrl)
	if m != ModAlt {
		t.Errorf("Without = %v, want alt", m)
	}
	if !ModNone.IsEmpty() {
		t.Error("ModNone.IsEmpty() = false")
	}
	if ModShift.IsEmpty() {
		t.Error("ModShift.IsEmpty() = true")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModShift, "shift"},
		{ModCtrl | ModAlt, "alt-ctrl"},
		{ModCtrl | ModShift, "ctrl-shift"},
		{ModAlt | ModShift, "alt-shift"},
		{ModCtrl | ModAlt | ModShift, "alt-ctrl-shift"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%b).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"alt", ModAlt},
		{"shift", ModShift},
		{"CTRL", ModCtrl},
		{"Shift", ModShift},
		{"meta", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
