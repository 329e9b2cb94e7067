// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvailabilityRepository abstracts persistence for weekly availability
// rules. Write-time uniqueness per weekday is enforced here (unique index
// on userId+dayOfWeek plus upsert semantics), so readers may assume at
// most one rule per weekday.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, rule *models.AvailabilityRule) error
	GetByUserID(ctx context.Context, userID string) ([]models.AvailabilityRule, error)
	DeleteByWeekday(ctx context.Context, userID string, dayOfWeek int) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability_rules"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func (r *mongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
