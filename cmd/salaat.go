package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Tiliavir/hyprkit/internal/aladhan"
	"github.com/Tiliavir/hyprkit/internal/config"
	"github.com/Tiliavir/hyprkit/internal/model"
	"github.com/Tiliavir/hyprkit/internal/prayer"
	"github.com/Tiliavir/hyprkit/internal/storage"
)

var (
	salaatCity      string
	salaatCountry   string
	salaatMethod    int
	salaatSchool    int
	salaatCache     string
	salaatAPIBase   string
	salaatCountdown bool
)

var salaatCmd = &cobra.Command{
	Use:   "salaat",
	Short: "Print the current and next prayer as a waybar JSON line",
	Long: `Fetches today's prayer timings from the Aladhan API and prints one JSON
record ({"text","tooltip","class"}) for a waybar custom module.

When the API is unreachable the last successful response, cached in
~/.cache/prayer_times.json, is used instead. Without either, an error record
with class "error" is printed. The command always prints exactly one line,
even when the config file is broken or HOME is unset.`,
	Annotations: map[string]string{annotationConfigFallback: "true"},
	Args:        cobra.NoArgs,
	RunE:        runSalaat,
}

func init() {
	addSalaatFlags(salaatCmd.Flags())
}

func addSalaatFlags(fs *pflag.FlagSet) {
	fs.StringVar(&salaatCity, "city", config.DefaultCity, "City to fetch timings for")
	fs.StringVar(&salaatCountry, "country", config.DefaultCountry, "Country of the city")
	fs.IntVar(&salaatMethod, "method", config.DefaultMethod, "Aladhan calculation method id")
	fs.IntVar(&salaatSchool, "school", config.DefaultSchool, "Asr school: 0 = Shafi'i, 1 = Hanafi")
	fs.StringVar(&salaatCache, "cache", "", "Cache file (default ~/.cache/prayer_times.json)")
	fs.StringVar(&salaatAPIBase, "api-base", "", "Aladhan API base URL (default "+aladhan.DefaultBaseURL+")")
	fs.BoolVar(&salaatCountdown, "countdown", false, "Append the time left until the next prayer")
}

// salaatSettings is the merged flag and config view of the widget.
type salaatSettings struct {
	Query     aladhan.Query
	Client    aladhan.Options
	CachePath string
	Countdown bool
}

// resolveSalaat applies flags that were set explicitly over the config file.
func resolveSalaat(flags *pflag.FlagSet, c config.SalaatConfig) salaatSettings {
	s := salaatSettings{
		Query: aladhan.Query{
			City:    c.City,
			Country: c.Country,
			Method:  c.MethodOrDefault(),
			School:  c.SchoolOrDefault(),
		},
		Client: aladhan.Options{
			BaseURL: c.APIBase,
			Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
			Token:   c.APIToken,
		},
		CachePath: c.CachePath,
		Countdown: salaatCountdown,
	}
	if flags.Changed("city") {
		s.Query.City = salaatCity
	}
	if flags.Changed("country") {
		s.Query.Country = salaatCountry
	}
	if flags.Changed("method") {
		s.Query.Method = salaatMethod
	}
	if flags.Changed("school") {
		s.Query.School = salaatSchool
	}
	if flags.Changed("cache") {
		s.CachePath = salaatCache
	}
	if flags.Changed("api-base") {
		s.Client.BaseURL = salaatAPIBase
	}
	return s
}

func runSalaat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := resolveSalaat(cmd.Flags(), cfg.Salaat)
	logger.Debug("salaat settings",
		zap.String("city", s.Query.City),
		zap.String("country", s.Query.Country),
		zap.Int("method", s.Query.Method),
		zap.Int("school", s.Query.School))

	return writeRecord(cmd.OutOrStdout(), salaatRecord(ctx, s, time.Now))
}

// salaatRecord makes the single fetch attempt and formats the result.
func salaatRecord(ctx context.Context, s salaatSettings, now func() time.Time) model.StatusRecord {
	r := &prayer.Resolver{
		Fetcher:   aladhan.NewClient(ctx, s.Query, s.Client),
		Store:     openStore(s.CachePath),
		Logger:    logger,
		Now:       now,
		Countdown: s.Countdown,
	}
	return r.Resolve(ctx)
}

// openStore returns the cache at path, or at the default location. Without a
// usable location the widget still runs, only without a fallback.
func openStore(path string) storage.Store {
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			logger.Warn("prayer times cache disabled", zap.Error(err))
			return storage.NewMemoryStore(nil)
		}
	}
	return storage.NewFileStore(path)
}

// writeRecord prints rec as a single JSON line.
func writeRecord(w io.Writer, rec model.StatusRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("writing status record: %w", err)
	}
	return nil
}
