// File: services/booking/availability.go
package booking

import (
	"context"
	"fmt"

	availabilityRepo "bookify/database/repository/availability"
	"bookify/models"
	"bookify/scheduling"
)

// AvailabilityService manages a business's weekly availability rules.
type AvailabilityService interface {
	SetRule(ctx context.Context, userID string, req models.SetAvailabilityRequest) (*models.AvailabilityRule, error)
	GetRules(ctx context.Context, userID string) ([]models.AvailabilityRule, error)
	DeleteRule(ctx context.Context, userID string, dayOfWeek int) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache SlotCache // optional; invalidated on every write
}

// SetRule validates and upserts the rule for one weekday. Timezone names
// and the local open<close ordering are checked at write time; DST edge
// cases on specific dates are the resolver's concern at query time.
func (s *DefaultAvailabilityService) SetRule(ctx context.Context, userID string, req models.SetAvailabilityRequest) (*models.AvailabilityRule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	}
	if _, err := scheduling.LookupTimezone(req.Timezone); err != nil {
		return nil, fmt.Errorf("unrecognized timezone %q", req.Timezone)
	}
	openMinutes := req.OpenTime.Hour*60 + req.OpenTime.Minute
	closeMinutes := req.CloseTime.Hour*60 + req.CloseTime.Minute
	if closeMinutes <= openMinutes {
		return nil, fmt.Errorf("close_time must be after open_time")
	}

	rule := &models.AvailabilityRule{
		UserID:    userID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Timezone:  req.Timezone,
	}
	if err := s.Repo.Upsert(ctx, rule); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.InvalidateUser(ctx, userID)
	}
	return rule, nil
}

func (s *DefaultAvailabilityService) GetRules(ctx context.Context, userID string) ([]models.AvailabilityRule, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *DefaultAvailabilityService) DeleteRule(ctx context.Context, userID string, dayOfWeek int) error {
	if err := s.Repo.DeleteByWeekday(ctx, userID, dayOfWeek); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.InvalidateUser(ctx, userID)
	}
	return nil
}
