package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/hyprkit/internal/palette"
)

// Theme holds the lipgloss styles for every view, derived from a pywal
// palette so the terminal views match the rest of the desktop.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
	Success    lipgloss.Color
	Muted      lipgloss.Color

	App         lipgloss.Style
	Title       lipgloss.Style
	Section     lipgloss.Style
	ColumnHead  lipgloss.Style
	Key         lipgloss.Style
	Description lipgloss.Style
	Panel       lipgloss.Style
	Button      lipgloss.Style
	Selected    lipgloss.Style
	DangerSel   lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// NewTheme builds the styles for p. color4 is the accent, color1 marks
// destructive actions and color2 success.
func NewTheme(p palette.Palette) Theme {
	fb := palette.Fallback()
	t := Theme{
		Background: lipgloss.Color(orDefault(p.Background, fb.Background)),
		Foreground: lipgloss.Color(orDefault(p.Foreground, fb.Foreground)),
		Accent:     lipgloss.Color(p.Color(4, fb.Color(4, "#bd93f9"))),
		Danger:     lipgloss.Color(p.Color(1, fb.Color(1, "#ff5555"))),
		Success:    lipgloss.Color(p.Color(2, fb.Color(2, "#50fa7b"))),
		Muted:      lipgloss.Color(p.Color(8, "#6272a4")),
	}

	t.App = lipgloss.NewStyle().
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1).
		MarginBottom(1)

	t.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginTop(1)

	t.ColumnHead = lipgloss.NewStyle().
		Foreground(t.Muted).
		Underline(true)

	t.Key = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	t.Description = lipgloss.NewStyle().
		Foreground(t.Foreground)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.Button = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Foreground(t.Foreground).
		Padding(0, 2)

	t.Selected = t.Button.
		BorderForeground(t.Accent).
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.DangerSel = t.Selected.
		BorderForeground(t.Danger).
		Background(t.Danger)

	t.Status = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1).
		MarginTop(1)

	t.Error = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.Help = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	return t
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
