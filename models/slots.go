// File: models/slots.go
package models

import "time"

// InstantFormat is the canonical wire representation for absolute
// instants: UTC, second resolution, "Z" suffix, no numeric offset.
const InstantFormat = "2006-01-02T15:04:05Z07:00"

// TimeSlot is one bookable slot as returned to API clients. Both bounds
// render as e.g. "2025-01-01T09:00:00Z"; the frontend contract depends on
// this exact shape.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FormatInstant renders an absolute instant in the canonical UTC format.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantFormat)
}
