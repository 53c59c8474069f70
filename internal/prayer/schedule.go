// Package prayer selects the current and next prayer-time event and formats
// the status-bar record for it.
package prayer

import "github.com/Tiliavir/hyprkit/internal/model"

// Select returns the current and next events for the given "HH:MM" clock.
//
// current is the last event whose time is <= now; ties go to the later entry.
// Before the first event, current is the last event of the list (still
// active from the previous day). next is the first event after current in
// list order, wrapping to the first event after the last one.
//
// s must contain at least one event.
func Select(s model.Schedule, now string) (current, next model.Event) {
	events := s.Events
	var cur, nxt *model.Event
	for i := range events {
		if events[i].Time <= now {
			cur = &events[i]
			if i < len(events)-1 {
				nxt = &events[i+1]
			} else {
				nxt = &events[0]
			}
		} else if nxt == nil {
			nxt = &events[i]
		}
	}
	if cur == nil {
		cur = &events[len(events)-1]
	}
	if nxt == nil {
		nxt = &events[0]
	}
	return *cur, *nxt
}
