// File: services/booking/engine.go
package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "bookify/database/repository/appointment"
	availabilityRepo "bookify/database/repository/availability"
	catalogRepo "bookify/database/repository/catalog"
	"bookify/models"
	"bookify/scheduling"
	"bookify/utils"

	"go.uber.org/zap"
)

// BusySource supplies busy intervals held outside our own appointment
// store (an external calendar), already normalized to UTC instants.
type BusySource interface {
	BusyIntervals(ctx context.Context, userID string, window scheduling.Window) ([]models.BusyInterval, error)
}

// SlotEngine answers "which slots can a customer book for this service on
// this date".
type SlotEngine interface {
	GetAvailableSlots(ctx context.Context, userID, serviceID, date string) ([]models.TimeSlot, error)
}

// DefaultSlotEngine wires the pure scheduling core to the availability
// rules, the appointment store, the optional external calendar, and the
// optional response cache.
type DefaultSlotEngine struct {
	Rules        availabilityRepo.AvailabilityRepository
	Catalog      catalogRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Calendar     BusySource // optional
	Cache        SlotCache  // optional
}

// GetAvailableSlots resolves the day's availability window, collects busy
// intervals from confirmed appointments and the external calendar, and
// generates the bookable slots for the service's duration.
//
// Scheduling errors (no availability, invalid window, bad timezone) pass
// through unwrapped so callers can map them with errors.Is. A failing
// external calendar degrades to appointment-only busy data rather than
// failing the query.
func (e *DefaultSlotEngine) GetAvailableSlots(ctx context.Context, userID, serviceID, date string) ([]models.TimeSlot, error) {
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}

	svc, err := e.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if svc.UserID != userID {
		return nil, fmt.Errorf("service %s does not belong to user %s", serviceID, userID)
	}
	if !svc.Active {
		return nil, fmt.Errorf("service %s is not bookable", serviceID)
	}

	if e.Cache != nil {
		if slots, ok := e.Cache.Get(ctx, userID, serviceID, date); ok {
			return slots, nil
		}
	}

	rules, err := e.Rules.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability rules: %w", err)
	}

	window, err := scheduling.ResolveWindow(rules, day)
	if err != nil {
		return nil, err
	}

	busy, err := e.collectBusyIntervals(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	generated := scheduling.GenerateSlots(window, duration, busy)

	slots := make([]models.TimeSlot, 0, len(generated))
	for _, slot := range generated {
		slots = append(slots, models.TimeSlot{
			StartTime: models.FormatInstant(slot.Start),
			EndTime:   models.FormatInstant(slot.End),
		})
	}

	if e.Cache != nil {
		e.Cache.Set(ctx, userID, serviceID, date, slots)
	}
	return slots, nil
}

// collectBusyIntervals merges confirmed appointments with external
// calendar holds for the window.
func (e *DefaultSlotEngine) collectBusyIntervals(ctx context.Context, userID string, window scheduling.Window) ([]models.BusyInterval, error) {
	appts, err := e.Appointments.ListByUserAndRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	busy := make([]models.BusyInterval, 0, len(appts))
	for _, appt := range appts {
		busy = append(busy, models.BusyInterval{Start: appt.StartTime, End: appt.EndTime})
	}

	if e.Calendar != nil {
		external, err := e.Calendar.BusyIntervals(ctx, userID, window)
		if err != nil {
			utils.GetLogger().Warn("external calendar lookup failed, using appointments only",
				zap.String("userID", userID), zap.Error(err))
		} else {
			busy = append(busy, external...)
		}
	}

	return busy, nil
}
