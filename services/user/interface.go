// File: services/user/interface.go
package user

import (
	userRepo "bookify/database/repository/user"
	"bookify/models"
)

// UserService defines account management for business owners.
type UserService interface {
	// Registration & authentication
	Register(data models.UserRegistrationData) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error
	UpdateUserPassword(userID, currentPassword, newPassword string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile.
type AuthResponse struct {
	ID    string       `json:"id"`
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
