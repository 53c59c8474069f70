package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/hyprkit/internal/config"
	"github.com/Tiliavir/hyprkit/internal/palette"
	"github.com/Tiliavir/hyprkit/internal/ui"
)

// annotationConfigFallback marks commands that run on config.Default when
// the config file cannot be loaded instead of failing.
const annotationConfigFallback = "hyprkit/config-fallback"

var (
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hyprkit",
	Short: "hyprkit – small Hyprland desktop utilities",
	Long: `hyprkit bundles the helper tools of a Hyprland desktop in one binary:
a prayer-time status widget, a keybind cheat sheet, a power menu and a
random hadith viewer. Settings live in ~/.config/hyprkit/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if configPath != "" {
			cfg, err = config.LoadFile(configPath, false)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			if cmd.Annotations[annotationConfigFallback] == "" {
				return err
			}
			logger.Warn("config unusable, running on defaults", zap.Error(err))
			cfg = config.Default()
		}
		logger.Debug("configuration loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/hyprkit/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(salaatCmd)
	rootCmd.AddCommand(bindsCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(hadithCmd)
}

// newLogger builds the stderr logger. Only warnings and errors are shown
// unless verbose is set, so stdout stays reserved for tool output.
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// loadTheme resolves the pywal palette from the configured paths. A missing
// scheme is not an error; the fallback palette is used.
func loadTheme() ui.Theme {
	linesPath, jsonPath := cfg.Palette.ColorsPath, cfg.Palette.ColorsJSONPath
	if linesPath == "" || jsonPath == "" {
		defLines, defJSON, err := palette.DefaultPaths()
		if err != nil {
			logger.Warn("cannot locate pywal colours", zap.Error(err))
		}
		if linesPath == "" {
			linesPath = defLines
		}
		if jsonPath == "" {
			jsonPath = defJSON
		}
	}
	p, err := palette.Load(linesPath, jsonPath)
	if err != nil {
		logger.Debug("using fallback palette", zap.Error(err))
	}
	return ui.NewTheme(p)
}
