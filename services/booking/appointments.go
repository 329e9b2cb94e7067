// File: services/booking/appointments.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "bookify/database/repository/appointment"
	catalogRepo "bookify/database/repository/catalog"
	"bookify/models"

	"github.com/google/uuid"
)

// ErrSlotTaken indicates the requested interval collides with an existing
// confirmed appointment.
var ErrSlotTaken = errors.New("requested time is no longer available")

// AppointmentService manages committed bookings.
type AppointmentService interface {
	Book(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, userID, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, userID string, from, to time.Time) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, userID, id string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo    appointmentRepo.AppointmentRepository
	Catalog catalogRepo.ServiceRepository
	Cache   SlotCache // optional; invalidated on every write
}

// Book creates a confirmed appointment after conflict-checking the
// requested interval. The appointment's end is derived from the service
// duration, never taken from the client.
func (s *DefaultAppointmentService) Book(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	svc, err := s.Catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if svc.UserID != req.UserID {
		return nil, fmt.Errorf("service %s does not belong to user %s", req.ServiceID, req.UserID)
	}
	if !svc.Active {
		return nil, fmt.Errorf("service %s is not bookable", req.ServiceID)
	}

	start := req.StartTime.UTC()
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	overlapping, err := s.Repo.CountOverlapping(ctx, req.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if overlapping > 0 {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartTime:     start,
		EndTime:       end,
		Status:        models.AppointmentStatusConfirmed,
		Notes:         req.Notes,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Cache != nil {
		s.Cache.InvalidateUser(ctx, req.UserID)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, userID, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.UserID != userID {
		return nil, fmt.Errorf("appointment %s does not belong to user %s", id, userID)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListAppointments(ctx context.Context, userID string, from, to time.Time) ([]models.Appointment, error) {
	return s.Repo.ListByUserAndRange(ctx, userID, from, to)
}

func (s *DefaultAppointmentService) CancelAppointment(ctx context.Context, userID, id string) error {
	if err := s.Repo.Cancel(ctx, userID, id); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.InvalidateUser(ctx, userID)
	}
	return nil
}
