// File: scheduling/slots_test.go
package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify/models"
)

func utcWindow(startHour, endHour int) Window {
	return Window{
		Start: time.Date(2025, time.January, 1, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, endHour, 0, 0, 0, time.UTC),
	}
}

func busyUTC(startHour, endHour int) models.BusyInterval {
	return models.BusyInterval{
		Start: time.Date(2025, time.January, 1, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, endHour, 0, 0, 0, time.UTC),
	}
}

func TestGenerateSlotsBlocksOverlaps(t *testing.T) {
	// Window 09:00-12:00, busy 10:00-11:00, hour slots: the middle
	// candidate is dropped, leaving exactly two.
	slots := GenerateSlots(utcWindow(9, 12), time.Hour, []models.BusyInterval{busyUTC(10, 11)})

	require.Len(t, slots, 2)
	assert.Equal(t, "2025-01-01T09:00:00Z", models.FormatInstant(slots[0].Start))
	assert.Equal(t, "2025-01-01T10:00:00Z", models.FormatInstant(slots[0].End))
	assert.Equal(t, "2025-01-01T11:00:00Z", models.FormatInstant(slots[1].Start))
	assert.Equal(t, "2025-01-01T12:00:00Z", models.FormatInstant(slots[1].End))
}

func TestGenerateSlotsNoBusyIntervals(t *testing.T) {
	slots := GenerateSlots(utcWindow(9, 12), time.Hour, nil)

	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start), "slots must ascend")
	}
}

func TestGenerateSlotsAdjacencyIsNotOverlap(t *testing.T) {
	// Busy 10:00-11:00: the 09:00-10:00 slot ends exactly at the busy
	// start and the 11:00-12:00 slot starts exactly at the busy end.
	// Both survive.
	slots := GenerateSlots(utcWindow(9, 12), time.Hour, []models.BusyInterval{busyUTC(10, 11)})

	require.Len(t, slots, 2)
	assert.True(t, slots[0].End.Equal(time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)))
	assert.True(t, slots[1].Start.Equal(time.Date(2025, time.January, 1, 11, 0, 0, 0, time.UTC)))
}

func TestGenerateSlotsPartialOverlapDiscardsWholeSlot(t *testing.T) {
	// Busy 10:30-10:45 clips only part of the 10:00-11:00 candidate, but
	// the candidate is discarded entirely, never truncated.
	busy := []models.BusyInterval{{
		Start: time.Date(2025, time.January, 1, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 10, 45, 0, 0, time.UTC),
	}}

	slots := GenerateSlots(utcWindow(9, 12), time.Hour, busy)

	require.Len(t, slots, 2)
	assert.Equal(t, 9, slots[0].Start.UTC().Hour())
	assert.Equal(t, 11, slots[1].Start.UTC().Hour())
}

func TestGenerateSlotsDropsTrailingRemainder(t *testing.T) {
	// 09:00-12:30 with hour slots: the 12:00-13:00 candidate would
	// extend past the window, so only three slots come back.
	window := Window{
		Start: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 12, 30, 0, 0, time.UTC),
	}

	slots := GenerateSlots(window, time.Hour, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, 11, slots[2].Start.UTC().Hour())
}

func TestGenerateSlotsWindowSmallerThanDuration(t *testing.T) {
	slots := GenerateSlots(utcWindow(9, 10), 90*time.Minute, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsBusyCoveringWholeWindow(t *testing.T) {
	slots := GenerateSlots(utcWindow(9, 12), time.Hour, []models.BusyInterval{busyUTC(8, 13)})
	assert.Empty(t, slots)
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(utcWindow(9, 12), 0, nil))
	assert.Empty(t, GenerateSlots(utcWindow(9, 12), -time.Hour, nil))
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	busy := []models.BusyInterval{busyUTC(10, 11), busyUTC(14, 15)}
	window := utcWindow(9, 17)

	first := GenerateSlots(window, 30*time.Minute, busy)
	second := GenerateSlots(window, 30*time.Minute, busy)

	assert.Equal(t, first, second)
}
