package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Tiliavir/hyprkit/internal/config"
	"github.com/Tiliavir/hyprkit/internal/power"
	"github.com/Tiliavir/hyprkit/internal/ui/components"
)

var powerCmd = &cobra.Command{
	Use:   "power [lock|logout|shutdown|reboot]",
	Short: "Open the power menu or run a power action directly",
	Long: `Without an argument an interactive menu with Lock, Logout, Shutdown and
Reboot is shown. With an action name that action is started immediately.

Commands can be overridden in the "power" section of the config file.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"lock", "logout", "shutdown", "reboot"},
	RunE:      runPower,
}

// powerActions applies the configured command overrides.
func powerActions(c config.PowerConfig) []power.Action {
	return power.Actions(power.Commands{
		Lock:     c.Lock,
		Logout:   c.Logout,
		Shutdown: c.Shutdown,
		Reboot:   c.Reboot,
	})
}

// runPowerAction starts the named action once.
func runPowerAction(w io.Writer, r power.Runner, actions []power.Action, name string) error {
	a, ok := power.Find(actions, name)
	if !ok {
		return fmt.Errorf("unknown action %q (want lock, logout, shutdown or reboot)", name)
	}
	if !power.IsAvailable(a) {
		logger.Warn("command not found on PATH", zap.String("action", a.Name), zap.String("command", a.Command[0]))
	}
	if err := power.Run(r, a); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", a.Name, strings.Join(a.Command, " "))
	return nil
}

func runPower(cmd *cobra.Command, args []string) error {
	actions := powerActions(cfg.Power)
	runner := power.ExecRunner{}

	if len(args) == 1 {
		return runPowerAction(cmd.OutOrStdout(), runner, actions, args[0])
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("power menu needs a terminal; pass an action instead")
	}
	menu := components.NewPowerMenu(actions, runner, loadTheme(), logger)
	if _, err := tea.NewProgram(menu, tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("running power menu: %w", err)
	}
	return nil
}
