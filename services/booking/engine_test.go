// File: services/booking/engine_test.go
package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify/models"
	"bookify/scheduling"
)

type fakeRuleRepo struct {
	rules []models.AvailabilityRule
}

func (f *fakeRuleRepo) Upsert(ctx context.Context, rule *models.AvailabilityRule) error {
	f.rules = append(f.rules, *rule)
	return nil
}

func (f *fakeRuleRepo) GetByUserID(ctx context.Context, userID string) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) DeleteByWeekday(ctx context.Context, userID string, dayOfWeek int) error {
	return nil
}

type fakeCatalogRepo struct {
	services map[string]*models.Service
}

func (f *fakeCatalogRepo) Create(ctx context.Context, svc *models.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return svc, nil
}

func (f *fakeCatalogRepo) ListByUserID(ctx context.Context, userID string) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, svc *models.Service) error { return nil }

func (f *fakeCatalogRepo) Delete(ctx context.Context, userID, id string) error { return nil }

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) error {
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeApptRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Status == models.AppointmentStatusConfirmed && a.StartTime.Before(to) && a.EndTime.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) CountOverlapping(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	var n int64
	for _, a := range f.appts {
		if a.Status == models.AppointmentStatusConfirmed && a.StartTime.Before(end) && a.EndTime.After(start) {
			n++
		}
	}
	return n, nil
}

func (f *fakeApptRepo) Cancel(ctx context.Context, userID, id string) error { return nil }

type fakeBusySource struct {
	busy []models.BusyInterval
	err  error
}

func (f *fakeBusySource) BusyIntervals(ctx context.Context, userID string, window scheduling.Window) ([]models.BusyInterval, error) {
	return f.busy, f.err
}

// 2025-01-01 is a Wednesday (weekday 3).
func testEngine(appts *fakeApptRepo, calendar BusySource) *DefaultSlotEngine {
	rules := &fakeRuleRepo{rules: []models.AvailabilityRule{{
		UserID:    "user-1",
		DayOfWeek: 3,
		OpenTime:  models.TimeOfDay{Hour: 9},
		CloseTime: models.TimeOfDay{Hour: 12},
		Timezone:  "UTC",
	}}}
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", UserID: "user-1", Name: "Consultation", DurationMinutes: 60, Active: true},
	}}
	return &DefaultSlotEngine{
		Rules:        rules,
		Catalog:      catalog,
		Appointments: appts,
		Calendar:     calendar,
	}
}

func TestGetAvailableSlotsFiltersBookedAppointments(t *testing.T) {
	appts := &fakeApptRepo{appts: []models.Appointment{{
		ID:        "appt-1",
		UserID:    "user-1",
		Status:    models.AppointmentStatusConfirmed,
		StartTime: time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.January, 1, 11, 0, 0, 0, time.UTC),
	}}}
	engine := testEngine(appts, nil)

	slots, err := engine.GetAvailableSlots(context.Background(), "user-1", "svc-1", "2025-01-01")
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "2025-01-01T09:00:00Z", slots[0].StartTime)
	assert.Equal(t, "2025-01-01T11:00:00Z", slots[1].StartTime)
}

func TestGetAvailableSlotsMergesExternalCalendarBusy(t *testing.T) {
	calendar := &fakeBusySource{busy: []models.BusyInterval{{
		Start: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC),
	}}}
	engine := testEngine(&fakeApptRepo{}, calendar)

	slots, err := engine.GetAvailableSlots(context.Background(), "user-1", "svc-1", "2025-01-01")
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "2025-01-01T10:00:00Z", slots[0].StartTime)
	assert.Equal(t, "2025-01-01T11:00:00Z", slots[1].StartTime)
}

func TestGetAvailableSlotsDegradesWhenCalendarFails(t *testing.T) {
	calendar := &fakeBusySource{err: errors.New("freebusy timeout")}
	engine := testEngine(&fakeApptRepo{}, calendar)

	slots, err := engine.GetAvailableSlots(context.Background(), "user-1", "svc-1", "2025-01-01")
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestGetAvailableSlotsNoAvailabilityPassesThrough(t *testing.T) {
	engine := testEngine(&fakeApptRepo{}, nil)

	// 2025-01-02 is a Thursday; the only rule covers Wednesday.
	_, err := engine.GetAvailableSlots(context.Background(), "user-1", "svc-1", "2025-01-02")
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduling.ErrNoAvailability)
}

func TestGetAvailableSlotsRejectsForeignService(t *testing.T) {
	engine := testEngine(&fakeApptRepo{}, nil)

	_, err := engine.GetAvailableSlots(context.Background(), "someone-else", "svc-1", "2025-01-01")
	assert.Error(t, err)
}

func TestGetAvailableSlotsRejectsBadDate(t *testing.T) {
	engine := testEngine(&fakeApptRepo{}, nil)

	_, err := engine.GetAvailableSlots(context.Background(), "user-1", "svc-1", "01/01/2025")
	assert.Error(t, err)
}

func TestBookRejectsConflicts(t *testing.T) {
	appts := &fakeApptRepo{}
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", UserID: "user-1", DurationMinutes: 60, Active: true},
	}}
	svc := &DefaultAppointmentService{Repo: appts, Catalog: catalog}

	req := models.CreateAppointmentRequest{
		UserID:        "user-1",
		ServiceID:     "svc-1",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		StartTime:     time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC),
	}

	first, err := svc.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, first.Status)
	assert.True(t, first.EndTime.Equal(first.StartTime.Add(time.Hour)))

	_, err = svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookAdjacentAppointmentsAllowed(t *testing.T) {
	appts := &fakeApptRepo{}
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", UserID: "user-1", DurationMinutes: 60, Active: true},
	}}
	svc := &DefaultAppointmentService{Repo: appts, Catalog: catalog}

	base := models.CreateAppointmentRequest{
		UserID:        "user-1",
		ServiceID:     "svc-1",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		StartTime:     time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
	_, err := svc.Book(context.Background(), base)
	require.NoError(t, err)

	next := base
	next.StartTime = time.Date(2025, time.January, 1, 11, 0, 0, 0, time.UTC)
	_, err = svc.Book(context.Background(), next)
	assert.NoError(t, err)
}
