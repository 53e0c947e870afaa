package bind

import "testing"

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"super", ModSuper},
		{"Super", ModSuper},
		{"mod4", ModMod4},
		{"ctrl", ModControl},
		{"control", ModControl},
		{"shift", ModShift},
		{"alt", ModAlt},
		{"mod1", ModMod1},
		{"caps", ModLock},
		{"capslock", ModLock},
		{"mod5", ModMod5},
		{"hyper", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModSuper, "super"},
		{ModSuper | ModShift, "super+shift"},
		{ModControl | ModAlt | ModShift, "ctrl+shift+alt"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%#x).String() = %q, want %q", uint32(tt.mods), got, tt.want)
		}
	}
}

func TestModifierHasWith(t *testing.T) {
	m := ModNone.With(ModSuper).With(ModShift)
	if !m.Has(ModSuper) || !m.Has(ModShift) {
		t.Errorf("With() mask %v missing expected bits", m)
	}
	if m.Has(ModControl) {
		t.Errorf("mask %v reports a bit that was never set", m)
	}
}
