package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shared by the views.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Reload   key.Binding // Re-read binds.conf
	Next     key.Binding // Fetch another hadith
	Quit     key.Binding

	// Power menu shortcuts
	Lock     key.Binding
	Logout   key.Binding
	Shutdown key.Binding
	Reboot   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("PgDn", "page down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new hadith"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Lock: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "lock"),
		),
		Logout: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "logout"),
		),
		Shutdown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shutdown"),
		),
		Reboot: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reboot"),
		),
	}
}
