// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository abstracts persistence for committed bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]models.Appointment, error)
	CountOverlapping(ctx context.Context, userID string, start, end time.Time) (int64, error)
	Cancel(ctx context.Context, userID, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
