// File: scheduling/slots.go
package scheduling

import (
	"time"

	"bookify/models"
)

// Slot is a bookable half-open absolute time range [Start, End) with
// End == Start + duration. Slots are ephemeral: computed per request,
// never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots partitions window into duration-sized candidates and
// drops every candidate that overlaps a busy interval. Total and
// deterministic: identical inputs always yield identical output, and no
// wall clock is consulted.
//
// Candidates step from window.Start while the full slot still fits; a
// trailing remainder shorter than duration produces no slot. A candidate
// overlapping any busy interval, even partially, is discarded whole.
// Candidates merely adjacent to a busy interval are kept. Output is in
// ascending start order by construction.
func GenerateSlots(window Window, duration time.Duration, busy []models.BusyInterval) []Slot {
	slots := make([]Slot, 0)
	if duration <= 0 {
		return slots
	}
	for start := window.Start; !start.Add(duration).After(window.End); start = start.Add(duration) {
		end := start.Add(duration)
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots
}

// overlapsAny reports whether [start, end) intersects any busy interval.
// Two half-open intervals [a,b) and [c,d) overlap iff a < d && c < b, so
// intervals that only touch at a bound do not count. Linear scan; busy
// sets are small enough per request that sorting buys nothing.
func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
