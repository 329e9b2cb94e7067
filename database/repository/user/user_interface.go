// File: database/repository/user/user_interface.go
package userRepo

import (
	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository abstracts persistence for business owner accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
