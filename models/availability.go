// File: models/availability.go
package models

import "time"

// AvailabilityRule defines a business's recurring weekly opening window.
// At most one rule exists per weekday (enforced by a unique index on
// userId+dayOfWeek in the availability repository).
type AvailabilityRule struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	DayOfWeek int       `bson:"dayOfWeek" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	OpenTime  TimeOfDay `bson:"openTime" json:"open_time"`
	CloseTime TimeOfDay `bson:"closeTime" json:"close_time"`
	Timezone  string    `bson:"timezone" json:"timezone"` // IANA name, e.g. "Africa/Lagos"
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// SetAvailabilityRequest is the payload for upserting a weekly rule.
type SetAvailabilityRequest struct {
	DayOfWeek int       `json:"day_of_week" binding:"min=0,max=6"`
	OpenTime  TimeOfDay `json:"open_time" binding:"required"`
	CloseTime TimeOfDay `json:"close_time" binding:"required"`
	Timezone  string    `json:"timezone" binding:"required"`
}

// BusyInterval is a half-open absolute time range [Start, End) during which
// no slot may be offered. Values are always UTC instants; any
// provider-specific timestamp format is normalized before reaching the
// scheduling engine.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
