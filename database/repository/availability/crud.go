// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

// Upsert replaces the rule for the given user+weekday, creating it when
// absent. One rule per weekday by construction.
func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	rule.UpdatedAt = now

	filter := bson.M{"userId": rule.UserID, "dayOfWeek": rule.DayOfWeek}
	update := bson.M{
		"$set": bson.M{
			"openTime":  rule.OpenTime,
			"closeTime": rule.CloseTime,
			"timezone":  rule.Timezone,
			"updatedAt": rule.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":        rule.ID,
			"userId":    rule.UserID,
			"dayOfWeek": rule.DayOfWeek,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability rule: %w", err)
	}
	return nil
}

// GetByUserID returns all weekly rules for a user, ordered by weekday.
func (r *mongoAvailabilityRepo) GetByUserID(ctx context.Context, userID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability rules for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoAvailabilityRepo) DeleteByWeekday(ctx context.Context, userID string, dayOfWeek int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "dayOfWeek": dayOfWeek})
	if err != nil {
		return fmt.Errorf("failed to delete availability rule: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
