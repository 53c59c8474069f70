package prayer

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/hyprkit/internal/model"
	"github.com/Tiliavir/hyprkit/internal/timecalc"
)

// Record classes understood by the waybar stylesheet.
const (
	ClassPrayerTimes = "prayer-times"
	ClassError       = "error"
)

// Glyph prefixes the status text (a Nerd Font mosque icon).
const Glyph = "\ueed3"

// FormatOptions tweaks the status text.
type FormatOptions struct {
	// Countdown appends the time remaining until the next event.
	Countdown bool
	// Now is the "HH:MM" clock used for the countdown.
	Now string
}

// Format renders the status record for a schedule and its selected events.
func Format(s model.Schedule, current, next model.Event, opts FormatOptions) model.StatusRecord {
	text := fmt.Sprintf("%s %s: %s | Next: %s: %s", Glyph, current.Name, current.Time, next.Name, next.Time)
	if opts.Countdown {
		if mins, err := timecalc.MinutesUntil(opts.Now, next.Time); err == nil {
			text += fmt.Sprintf(" (in %s)", timecalc.FormatDuration(int64(mins)*60))
		}
	}

	lines := make([]string, 0, len(s.Events))
	for _, e := range s.Events {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Name, e.Time))
	}

	return model.StatusRecord{
		Text:    text,
		Tooltip: strings.Join(lines, "\n"),
		Class:   ClassPrayerTimes,
	}
}

// ErrorRecord is emitted when neither a live fetch nor the cache produced a schedule.
func ErrorRecord() model.StatusRecord {
	return model.StatusRecord{
		Text:    "⛔ Prayer Times Error",
		Tooltip: "Failed to fetch prayer times. Check internet connection.",
		Class:   ClassError,
	}
}
