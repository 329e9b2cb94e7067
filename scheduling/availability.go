// File: scheduling/availability.go
package scheduling

import (
	"fmt"
	"time"

	"bookify/models"
)

// Date is a calendar date with no time or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" value.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Weekday reports the day of week (Sunday = 0), matching the numbering
// used by AvailabilityRule.DayOfWeek.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Window is a half-open absolute time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow selects the rule whose weekday matches date and converts
// its local open/close times to absolute instants using the rule's
// timezone. The availability repository enforces at most one rule per
// weekday, so the first match wins.
//
// Returns ErrNoAvailability when no rule covers the weekday, and
// ErrInvalidWindow when the resolved close instant is not strictly after
// the open instant (a close<=open misconfiguration, or a DST transition
// collapsing the window).
func ResolveWindow(rules []models.AvailabilityRule, date Date) (Window, error) {
	var rule *models.AvailabilityRule
	weekday := int(date.Weekday())
	for i := range rules {
		if rules[i].DayOfWeek == weekday {
			rule = &rules[i]
			break
		}
	}
	if rule == nil {
		return Window{}, ErrNoAvailability
	}

	open, err := ToInstant(at(date, rule.OpenTime), rule.Timezone)
	if err != nil {
		return Window{}, fmt.Errorf("resolving open time: %w", err)
	}
	closeAt, err := ToInstant(at(date, rule.CloseTime), rule.Timezone)
	if err != nil {
		return Window{}, fmt.Errorf("resolving close time: %w", err)
	}
	if !closeAt.After(open) {
		return Window{}, fmt.Errorf("%w: open %s, close %s on %s",
			ErrInvalidWindow, rule.OpenTime, rule.CloseTime, date)
	}

	return Window{Start: open, End: closeAt}, nil
}

// at combines a calendar date with a time of day into a wall-clock value.
func at(d Date, t models.TimeOfDay) LocalDateTime {
	return LocalDateTime{
		Year:   d.Year,
		Month:  d.Month,
		Day:    d.Day,
		Hour:   t.Hour,
		Minute: t.Minute,
	}
}
