package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Clock formats t as a 24-hour "HH:MM" string.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q: missing ':'", s)
	}
	if len(h) < 1 || len(h) > 2 || !digits(h) {
		return 0, fmt.Errorf("invalid clock %q: bad hour", s)
	}
	if len(m) != 2 || !digits(m) {
		return 0, fmt.Errorf("invalid clock %q: bad minute", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("invalid clock %q: bad hour", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("invalid clock %q: bad minute", s)
	}
	return hour*60 + minute, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeClock reduces an upstream timing such as "5:07 (SAST)" to a
// zero-padded "05:07" so that clocks compare correctly as strings.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	mins, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60), nil
}

// MinutesUntil returns how many minutes pass from clock from to clock to,
// wrapping past midnight. Equal clocks yield zero.
func MinutesUntil(from, to string) (int, error) {
	f, err := ParseClock(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseClock(to)
	if err != nil {
		return 0, err
	}
	return ((t-f)%minutesPerDay + minutesPerDay) % minutesPerDay, nil
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
