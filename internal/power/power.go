// Package power defines the session actions offered by the power menu.
package power

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Action is one power-menu entry.
type Action struct {
	Name    string
	Icon    string
	Command []string
	// Danger marks actions that end the session.
	Danger bool
}

// Commands overrides the argv of each action. Empty entries keep the default.
type Commands struct {
	Lock     []string
	Logout   []string
	Shutdown []string
	Reboot   []string
}

// DefaultCommands are the Hyprland/systemd defaults.
func DefaultCommands() Commands {
	return Commands{
		Lock:     []string{"hyprlock"},
		Logout:   []string{"hyprctl", "dispatch", "exit"},
		Shutdown: []string{"systemctl", "poweroff"},
		Reboot:   []string{"systemctl", "reboot"},
	}
}

// Actions returns the four menu actions in display order.
func Actions(c Commands) []Action {
	def := DefaultCommands()
	pick := func(override, fallback []string) []string {
		if len(override) > 0 {
			return override
		}
		return fallback
	}
	return []Action{
		{Name: "Lock", Icon: "\uf023", Command: pick(c.Lock, def.Lock)},
		{Name: "Logout", Icon: "\uf08b", Command: pick(c.Logout, def.Logout), Danger: true},
		{Name: "Shutdown", Icon: "\uf011", Command: pick(c.Shutdown, def.Shutdown), Danger: true},
		{Name: "Reboot", Icon: "\uf01e", Command: pick(c.Reboot, def.Reboot), Danger: true},
	}
}

// Find returns the action whose name matches (case-insensitively).
func Find(actions []Action, name string) (Action, bool) {
	for _, a := range actions {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Action{}, false
}

// Runner launches a command without waiting for it.
type Runner interface {
	Start(argv []string) error
}

// ExecRunner starts commands with os/exec.
type ExecRunner struct{}

// Start spawns argv and returns once the process has started.
func (ExecRunner) Start(argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", argv[0], err)
	}
	// The session action outlives this process; nothing to wait for.
	return cmd.Process.Release()
}

// Run triggers a single invocation of a's command.
func Run(r Runner, a Action) error {
	if err := r.Start(a.Command); err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(a.Name), err)
	}
	return nil
}

// IsAvailable reports whether a's executable is on PATH.
func IsAvailable(a Action) bool {
	if len(a.Command) == 0 {
		return false
	}
	_, err := exec.LookPath(a.Command[0])
	return err == nil
}
