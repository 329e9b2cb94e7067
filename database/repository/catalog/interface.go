// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository abstracts persistence for a business's bookable
// service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, userID, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB-backed ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
