// File: models/booking.go
package models

import "time"

// Appointment statuses.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a committed booking against a business's calendar.
// Confirmed appointments are the primary source of busy intervals for
// slot generation. All instants are stored in UTC.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"user_id"`
	ServiceID     string    `bson:"serviceId" json:"service_id"`
	CustomerName  string    `bson:"customerName" json:"customer_name"`
	CustomerEmail string    `bson:"customerEmail" json:"customer_email"`
	StartTime     time.Time `bson:"startTime" json:"start_time"`
	EndTime       time.Time `bson:"endTime" json:"end_time"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updated_at"`
}

// CreateAppointmentRequest is the customer-facing booking payload.
// Timestamps arrive as RFC3339 and are normalized to UTC on creation.
type CreateAppointmentRequest struct {
	UserID        string    `json:"user_id" binding:"required"`
	ServiceID     string    `json:"service_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	Notes         string    `json:"notes"`
}
