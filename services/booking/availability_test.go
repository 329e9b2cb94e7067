// File: services/booking/availability_test.go
package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify/models"
)

func TestSetRuleRejectsCoercingZoneNames(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeRuleRepo{}}

	// "" resolves to UTC and "Local" to the host zone if left unchecked;
	// neither may reach storage.
	for _, tz := range []string{"", "Local", "Asia/Lagos"} {
		_, err := svc.SetRule(context.Background(), "user-1", models.SetAvailabilityRequest{
			DayOfWeek: 1,
			OpenTime:  models.TimeOfDay{Hour: 9},
			CloseTime: models.TimeOfDay{Hour: 17},
			Timezone:  tz,
		})
		assert.Error(t, err, "SetRule accepted timezone %q", tz)
	}
}

func TestSetRuleRejectsInvertedWindow(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeRuleRepo{}}

	_, err := svc.SetRule(context.Background(), "user-1", models.SetAvailabilityRequest{
		DayOfWeek: 1,
		OpenTime:  models.TimeOfDay{Hour: 17},
		CloseTime: models.TimeOfDay{Hour: 9},
		Timezone:  "Africa/Lagos",
	})
	assert.Error(t, err)
}

func TestSetRuleStoresValidRule(t *testing.T) {
	repo := &fakeRuleRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	rule, err := svc.SetRule(context.Background(), "user-1", models.SetAvailabilityRequest{
		DayOfWeek: 3,
		OpenTime:  models.TimeOfDay{Hour: 9},
		CloseTime: models.TimeOfDay{Hour: 12},
		Timezone:  "Africa/Lagos",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", rule.UserID)
	assert.Equal(t, 3, rule.DayOfWeek)
	require.Len(t, repo.rules, 1)
}
