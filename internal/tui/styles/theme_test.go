package styles

import "testing"

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"default", true},
		{"light", true},
		{"", false},
		{"dracula", false},
	}

	for _, tt := range tests {
		if got := IsValidTheme(tt.name); got != tt.want {
			t.Errorf("IsValidTheme(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDefault) })

	Apply(ThemeLight)
	light := TextColor
	Apply(ThemeDefault)
	dark := TextColor

	if light == dark {
		t.Error("light and default themes share the same text color")
	}
}

func TestApplyUnknownFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDefault) })

	Apply(ThemeDefault)
	want := PrimaryColor
	Apply("no-such-theme")
	if PrimaryColor != want {
		t.Errorf("unknown theme primary = %v, want default %v", PrimaryColor, want)
	}
}
