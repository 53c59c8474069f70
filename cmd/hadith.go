package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Tiliavir/hyprkit/internal/hadith"
	"github.com/Tiliavir/hyprkit/internal/ui/components"
)

var (
	hadithPlain  bool
	hadithNumber int
)

var hadithCmd = &cobra.Command{
	Use:   "hadith",
	Short: "Show a random hadith from sunnah.com",
	Long: `Fetches a random hadith of Sahih al-Bukhari from sunnah.com and shows it in
an interactive viewer; press n for another one.

With --plain, or when stdout is not a terminal, the hadith is printed once as
plain text.`,
	Args: cobra.NoArgs,
	RunE: runHadith,
}

func init() {
	hadithCmd.Flags().BoolVar(&hadithPlain, "plain", false, "Print one hadith as plain text and exit")
	hadithCmd.Flags().IntVarP(&hadithNumber, "number", "n", 0, "Fetch this hadith number instead of a random one")
}

// hadithPicker returns the number chooser: a fixed number when one was
// requested, otherwise a random one in [1, limit].
func hadithPicker(fixed, limit int, rng *rand.Rand) func() int {
	if fixed > 0 {
		return func() int { return fixed }
	}
	return func() int { return hadith.RandomNumber(rng, limit) }
}

func runHadith(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if hadithNumber < 0 || hadithNumber > cfg.Hadith.MaxNumber {
		return fmt.Errorf("--number must be between 1 and %d", cfg.Hadith.MaxNumber)
	}

	client := hadith.NewClient(ctx, hadith.Options{
		BaseURL:    cfg.Hadith.BaseURL,
		Collection: cfg.Hadith.Collection,
	})
	seed := uint64(time.Now().UnixNano())
	pick := hadithPicker(hadithNumber, cfg.Hadith.MaxNumber, rand.New(rand.NewPCG(seed, seed>>1)))

	if hadithPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		n := pick()
		logger.Debug("fetching hadith", zap.String("url", client.URL(n)))
		h, err := client.Fetch(ctx, n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.String())
		return nil
	}

	view := components.NewHadithView(ctx, client, pick, loadTheme(), logger)
	if _, err := tea.NewProgram(view, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("running hadith viewer: %w", err)
	}
	return nil
}
