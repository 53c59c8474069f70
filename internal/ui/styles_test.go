package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/hyprkit/internal/palette"
)

func TestNewThemeUsesPalette(t *testing.T) {
	p := palette.Palette{
		Background: "#000000",
		Foreground: "#ffffff",
		Colors:     []string{"#000000", "#aa0000", "#00aa00", "#aaaa00", "#0000aa"},
	}
	th := NewTheme(p)

	tests := []struct {
		name string
		got  lipgloss.Color
		want lipgloss.Color
	}{
		{"background", th.Background, "#000000"},
		{"foreground", th.Foreground, "#ffffff"},
		{"accent", th.Accent, "#0000aa"},
		{"danger", th.Danger, "#aa0000"},
		{"success", th.Success, "#00aa00"},
		{"muted", th.Muted, "#6272a4"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestNewThemeEmptyPaletteFallsBack(t *testing.T) {
	th := NewTheme(palette.Palette{})
	fb := palette.Fallback()
	if string(th.Background) != fb.Background {
		t.Errorf("Background = %q, want %q", th.Background, fb.Background)
	}
	if string(th.Danger) != fb.Colors[1] {
		t.Errorf("Danger = %q, want %q", th.Danger, fb.Colors[1])
	}
}

func TestThemeRender(t *testing.T) {
	th := NewTheme(palette.Fallback())
	if got := th.Key.Render("SUPER, Q"); got == "" {
		t.Error("Key.Render returned empty string")
	}
}
