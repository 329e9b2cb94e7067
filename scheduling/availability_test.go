// File: scheduling/availability_test.go
package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify/models"
)

func rule(day int, open, close models.TimeOfDay, tz string) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:        "rule-1",
		UserID:    "user-1",
		DayOfWeek: day,
		OpenTime:  open,
		CloseTime: close,
		Timezone:  tz,
	}
}

func TestResolveWindowConvertsToAbsoluteRange(t *testing.T) {
	// 2025-12-25 is a Thursday (weekday 4). Lagos is UTC+1 year-round,
	// so 09:00-17:00 local is 08:00-16:00 UTC.
	rules := []models.AvailabilityRule{
		rule(4, models.TimeOfDay{Hour: 9}, models.TimeOfDay{Hour: 17}, "Africa/Lagos"),
	}

	window, err := ResolveWindow(rules, Date{Year: 2025, Month: time.December, Day: 25})
	require.NoError(t, err)

	assert.True(t, window.Start.Equal(time.Date(2025, time.December, 25, 8, 0, 0, 0, time.UTC)))
	assert.True(t, window.End.Equal(time.Date(2025, time.December, 25, 16, 0, 0, 0, time.UTC)))
}

func TestResolveWindowNoRuleForWeekday(t *testing.T) {
	// Rule covers Monday only; the 25th is a Thursday.
	rules := []models.AvailabilityRule{
		rule(1, models.TimeOfDay{Hour: 9}, models.TimeOfDay{Hour: 17}, "UTC"),
	}

	_, err := ResolveWindow(rules, Date{Year: 2025, Month: time.December, Day: 25})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestResolveWindowEmptyRules(t *testing.T) {
	_, err := ResolveWindow(nil, Date{Year: 2025, Month: time.December, Day: 25})
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestResolveWindowRejectsCloseBeforeOpen(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(4, models.TimeOfDay{Hour: 17}, models.TimeOfDay{Hour: 9}, "UTC"),
	}

	_, err := ResolveWindow(rules, Date{Year: 2025, Month: time.December, Day: 25})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestResolveWindowRejectsOpenEqualsClose(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(4, models.TimeOfDay{Hour: 9}, models.TimeOfDay{Hour: 9}, "UTC"),
	}

	_, err := ResolveWindow(rules, Date{Year: 2025, Month: time.December, Day: 25})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestResolveWindowSurfacesDSTGapInOpenTime(t *testing.T) {
	// 2025-03-30 is the London spring-forward Sunday; 01:30 local does
	// not exist, so the rule cannot be resolved for that date.
	rules := []models.AvailabilityRule{
		rule(0, models.TimeOfDay{Hour: 1, Minute: 30}, models.TimeOfDay{Hour: 5}, "Europe/London"),
	}

	_, err := ResolveWindow(rules, Date{Year: 2025, Month: time.March, Day: 30})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousLocalTime)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.December, Day: 25}, d)
	assert.Equal(t, time.Thursday, d.Weekday())

	_, err = ParseDate("25/12/2025")
	assert.Error(t, err)
}
