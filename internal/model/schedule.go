package model

import (
	"errors"
	"fmt"

	"github.com/Tiliavir/hyprkit/internal/timecalc"
)

// ErrEmptySchedule is returned when a timings map contains none of the known events.
var ErrEmptySchedule = errors.New("schedule has no known events")

// EventNames is the fixed order of the six daily prayer-time events.
var EventNames = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Event is a single named prayer-time event for the day.
type Event struct {
	Name string `json:"name"`
	Time string `json:"time"` // "HH:MM", 24-hour
}

// Schedule is the ordered list of events for one day.
type Schedule struct {
	Date   string  `json:"date,omitempty"`
	Events []Event `json:"events"`
}

// Timings returns the schedule as a name -> "HH:MM" map, the shape used by
// the upstream API and the cache file.
func (s Schedule) Timings() map[string]string {
	m := make(map[string]string, len(s.Events))
	for _, e := range s.Events {
		m[e.Name] = e.Time
	}
	return m
}

// ScheduleFromTimings builds a Schedule from an upstream timings map. Events
// are taken in EventNames order; names absent from the map are skipped and
// extra keys (Imsak, Midnight, ...) are ignored.
func ScheduleFromTimings(timings map[string]string, date string) (Schedule, error) {
	s := Schedule{Date: date}
	for _, name := range EventNames {
		raw, ok := timings[name]
		if !ok {
			continue
		}
		clock, err := timecalc.NormalizeClock(raw)
		if err != nil {
			return Schedule{}, fmt.Errorf("timing for %s: %w", name, err)
		}
		s.Events = append(s.Events, Event{Name: name, Time: clock})
	}
	if len(s.Events) == 0 {
		return Schedule{}, ErrEmptySchedule
	}
	return s, nil
}

// TimingsEnvelope mirrors the Aladhan API response. The cache file is written
// in the same shape so that data.timings always yields the event times.
type TimingsEnvelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Readable string `json:"readable"`
		} `json:"date"`
	} `json:"data"`
}

// StatusRecord is the JSON line consumed by the status-bar host.
type StatusRecord struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}
