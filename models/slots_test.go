// File: models/slots_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The slot wire format is a frontend contract; breaking it breaks every
// client, so the exact keys and timestamp shape are pinned here.
func TestTimeSlotSerializesExactContract(t *testing.T) {
	slot := TimeSlot{
		StartTime: "2025-12-25T09:00:00Z",
		EndTime:   "2025-12-25T10:00:00Z",
	}

	out, err := json.Marshal(slot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_time":"2025-12-25T09:00:00Z","end_time":"2025-12-25T10:00:00Z"}`, string(out))
}

func TestFormatInstantCanonicalUTC(t *testing.T) {
	// Non-UTC instants normalize to the Z-suffixed form with no
	// fractional seconds and no numeric offset.
	lagos := time.FixedZone("WAT", 3600)
	instant := time.Date(2025, time.December, 25, 10, 0, 0, 500, lagos)

	assert.Equal(t, "2025-12-25T09:00:00Z", FormatInstant(instant))
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"09:30"`), &tod))
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)

	out, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(out))
}

func TestTimeOfDayRejectsGarbage(t *testing.T) {
	var tod TimeOfDay
	assert.Error(t, json.Unmarshal([]byte(`"25:99"`), &tod))
	assert.Error(t, json.Unmarshal([]byte(`"morning"`), &tod))
}
