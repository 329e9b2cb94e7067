// File: scheduling/clock_test.go
package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLocalAppliesZoneOffset(t *testing.T) {
	// 10:00 UTC on Christmas should be 11:00 in Lagos (UTC+1, no DST).
	utc := time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)

	local, err := ToLocal(utc, "Africa/Lagos")
	require.NoError(t, err)

	assert.Equal(t, 11, local.Hour)
	assert.Equal(t, 25, local.Day)
}

func TestToLocalCrossesMidnight(t *testing.T) {
	// 23:00 UTC on Dec 25th is 08:00 on Dec 26th in Tokyo (UTC+9).
	lateNight := time.Date(2025, time.December, 25, 23, 0, 0, 0, time.UTC)

	local, err := ToLocal(lateNight, "Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, 26, local.Day)
	assert.Equal(t, 8, local.Hour)
}

func TestToLocalRejectsInvalidTimezone(t *testing.T) {
	utc := time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)

	_, err := ToLocal(utc, "Asia/Lagos")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestToInstantRejectsInvalidTimezone(t *testing.T) {
	local := LocalDateTime{Year: 2025, Month: time.December, Day: 25, Hour: 10}

	_, err := ToInstant(local, "Not/AZone")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestZoneNamesThatCoerceAreRejected(t *testing.T) {
	// LoadLocation maps "" to UTC and "Local" to the host zone; both must
	// fail instead of resolving, or conversions stop being deterministic.
	local := LocalDateTime{Year: 2025, Month: time.December, Day: 25, Hour: 10}
	utc := time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)

	for _, tz := range []string{"", "Local"} {
		_, err := ToInstant(local, tz)
		require.Error(t, err, "ToInstant accepted %q", tz)
		assert.ErrorIs(t, err, ErrInvalidTimezone)

		_, err = ToLocal(utc, tz)
		require.Error(t, err, "ToLocal accepted %q", tz)
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	}
}

func TestRoundTrip(t *testing.T) {
	zones := []string{"UTC", "Africa/Lagos", "Asia/Tokyo", "Europe/London", "America/New_York"}
	instants := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 13, 37, 42, 0, time.UTC),
		time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC),
	}

	for _, tz := range zones {
		for _, instant := range instants {
			local, err := ToLocal(instant, tz)
			require.NoError(t, err)

			back, err := ToInstant(local, tz)
			require.NoError(t, err, "round trip failed for %s in %s", instant, tz)
			assert.True(t, back.Equal(instant), "expected %s, got %s in %s", instant, back, tz)
		}
	}
}

func TestToInstantRejectsSpringForwardGap(t *testing.T) {
	// London jumps 01:00 -> 02:00 on 2025-03-30; 01:30 never happens.
	local := LocalDateTime{Year: 2025, Month: time.March, Day: 30, Hour: 1, Minute: 30}

	_, err := ToInstant(local, "Europe/London")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousLocalTime)
}

func TestToInstantRejectsFallBackOverlap(t *testing.T) {
	// London repeats 01:00-02:00 on 2025-10-26; 01:30 happens twice.
	local := LocalDateTime{Year: 2025, Month: time.October, Day: 26, Hour: 1, Minute: 30}

	_, err := ToInstant(local, "Europe/London")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousLocalTime)
}

func TestToInstantRejectsTwoHourFallBackOverlap(t *testing.T) {
	// Troll Station shifts a full two hours (+00 <-> +02). Clocks repeat
	// 01:00-03:00 when DST ends on 2025-10-26.
	local := LocalDateTime{Year: 2025, Month: time.October, Day: 26, Hour: 1, Minute: 30}

	_, err := ToInstant(local, "Antarctica/Troll")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousLocalTime)
}

func TestDurationMath(t *testing.T) {
	// Slot arithmetic relies on start + duration spanning hour boundaries.
	start := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

	end := start.Add(90 * time.Minute)

	assert.Equal(t, 11, end.Hour())
	assert.Equal(t, 30, end.Minute())
}
