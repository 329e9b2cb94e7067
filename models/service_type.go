// File: models/service_type.go
package models

import "time"

// Service is one bookable offering in a business's catalog. Its duration
// determines the slot size for availability queries.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"user_id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"duration_minutes"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updated_at"`
}

// CreateServiceRequest is the payload for adding a catalog entry.
type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

// UpdateServiceRequest carries a partial catalog update.
type UpdateServiceRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes"`
	Active          *bool   `json:"active"`
}
