package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Tiliavir/hyprkit/internal/binds"
	"github.com/Tiliavir/hyprkit/internal/ui/components"
)

const formatTUI = "tui"

var (
	bindsFile    string
	bindsFormat  string
	bindsNoWatch bool
)

var bindsCmd = &cobra.Command{
	Use:   "binds",
	Short: "Show the Hyprland keybind cheat sheet",
	Long: `Parses bind, binde and bindm lines of ~/.config/hypr/binds.conf that carry a
trailing "# description" and groups them into categories.

Without --format an interactive viewer is opened when stdout is a terminal
and a plain table is printed otherwise. The viewer reloads when the file
changes unless --no-watch is given.`,
	Args: cobra.NoArgs,
	RunE: runBinds,
}

func init() {
	bindsCmd.Flags().StringVarP(&bindsFile, "file", "f", "", "Binds file (default ~/.config/hypr/binds.conf)")
	bindsCmd.Flags().StringVar(&bindsFormat, "format", "", "Output format: tui, text, json, yaml, csv, md")
	bindsCmd.Flags().BoolVar(&bindsNoWatch, "no-watch", false, "Do not reload the viewer when the file changes")
}

// bindsPath resolves the binds file: flag, then config, then the default.
func bindsPath(flag, configured string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configured != "" {
		return configured, nil
	}
	return binds.DefaultPath()
}

// outputFormat picks the output format. An explicit format wins; otherwise
// the viewer is used only on a terminal.
func outputFormat(explicit string, isTTY bool) (string, error) {
	switch explicit {
	case "":
		if isTTY {
			return formatTUI, nil
		}
		return binds.FormatText, nil
	case formatTUI, binds.FormatText, binds.FormatJSON, binds.FormatYAML, binds.FormatCSV, binds.FormatMD:
		return explicit, nil
	default:
		return "", fmt.Errorf("unknown format %q (want tui, text, json, yaml, csv or md)", explicit)
	}
}

func runBinds(cmd *cobra.Command, args []string) error {
	path, err := bindsPath(bindsFile, cfg.Binds.Path)
	if err != nil {
		return err
	}
	format, err := outputFormat(bindsFormat, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return err
	}
	logger.Debug("binds", zap.String("path", path), zap.String("format", format))

	if format != formatTUI {
		return printBinds(cmd.OutOrStdout(), path, format)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	view := components.NewBindsView(ctx, components.BindsOptions{
		Path:   path,
		Load:   binds.Load,
		Watch:  !bindsNoWatch,
		Theme:  loadTheme(),
		Logger: logger,
	})
	if _, err := tea.NewProgram(view, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

// printBinds writes the categorised binds without the viewer. A file that
// cannot be read is reported on stderr and exits non-zero.
func printBinds(w io.Writer, path, format string) error {
	groups, err := binds.Load(path)
	if err != nil {
		return fmt.Errorf("loading binds: %w", err)
	}
	return binds.Write(w, groups, format)
}
