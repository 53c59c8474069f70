package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Tiliavir/hyprkit/internal/power"
	"github.com/Tiliavir/hyprkit/internal/ui"
)

// PowerMenu is a row of session action buttons.
type PowerMenu struct {
	actions []power.Action
	runner  power.Runner
	logger  *zap.Logger

	theme ui.Theme
	keys  ui.KeyMap

	cursor int
	status string
	ran    *power.Action
}

// NewPowerMenu creates a menu over actions that launches them with runner.
func NewPowerMenu(actions []power.Action, runner power.Runner, theme ui.Theme, logger *zap.Logger) PowerMenu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PowerMenu{
		actions: actions,
		runner:  runner,
		logger:  logger,
		theme:   theme,
		keys:    ui.DefaultKeyMap(),
	}
}

// Init does nothing; the menu is static.
func (m PowerMenu) Init() tea.Cmd { return nil }

// Update handles key presses.
func (m PowerMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Lock):
		return m.runNamed("Lock")
	case key.Matches(keyMsg, m.keys.Logout):
		return m.runNamed("Logout")
	case key.Matches(keyMsg, m.keys.Shutdown):
		return m.runNamed("Shutdown")
	case key.Matches(keyMsg, m.keys.Reboot):
		return m.runNamed("Reboot")
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		if len(m.actions) > 0 {
			return m.run(m.actions[m.cursor])
		}
	}
	return m, nil
}

func (m PowerMenu) runNamed(name string) (tea.Model, tea.Cmd) {
	a, ok := power.Find(m.actions, name)
	if !ok {
		return m, nil
	}
	return m.run(a)
}

// run invokes a once. On failure the menu stays open with the error shown.
func (m PowerMenu) run(a power.Action) (tea.Model, tea.Cmd) {
	for i := range m.actions {
		if m.actions[i].Name == a.Name {
			m.cursor = i
		}
	}
	m.logger.Debug("running power action", zap.String("action", a.Name), zap.Strings("argv", a.Command))
	if err := power.Run(m.runner, a); err != nil {
		m.logger.Warn("power action failed", zap.String("action", a.Name), zap.Error(err))
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.ran = &a
	m.status = a.Name + "…"
	return m, tea.Quit
}

// Cursor returns the index of the highlighted action.
func (m PowerMenu) Cursor() int { return m.cursor }

// Status returns the status line text.
func (m PowerMenu) Status() string { return m.status }

// Ran returns the action that was launched, if any.
func (m PowerMenu) Ran() (power.Action, bool) {
	if m.ran == nil {
		return power.Action{}, false
	}
	return *m.ran, true
}

// View renders the buttons.
func (m PowerMenu) View() string {
	buttons := make([]string, 0, len(m.actions))
	for i, a := range m.actions {
		style := m.theme.Button
		if i == m.cursor {
			style = m.theme.Selected
			if a.Danger {
				style = m.theme.DangerSel
			}
		}
		buttons = append(buttons, style.Render(a.Icon+"\n"+a.Name))
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Power Menu"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
	b.WriteString("\n")
	if strings.HasPrefix(m.status, "Error") {
		b.WriteString(m.theme.Error.Render(m.status))
	} else {
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("←/→ select · enter run · k lock · e logout · s shutdown · r reboot · q close"))
	return m.theme.App.Render(b.String())
}
