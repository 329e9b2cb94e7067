// File: services/user/crud.go
package user

import (
	"fmt"

	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return usr, nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return usr, nil
}

// UpdateUser applies the non-nil fields of req and returns the fresh document.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	updateDoc := bson.M{}
	if req.BusinessName != nil {
		updateDoc["businessName"] = *req.BusinessName
	}
	if req.Location != nil {
		updateDoc["location"] = *req.Location
	}
	if req.PhoneNumber != nil {
		updateDoc["phoneNumber"] = *req.PhoneNumber
	}
	if req.Description != nil {
		updateDoc["description"] = *req.Description
	}
	if req.PhoneNumberIsWhatsapp != nil {
		updateDoc["phoneNumberIsWhatsapp"] = *req.PhoneNumberIsWhatsapp
	}
	if req.ProfileImageURL != nil {
		updateDoc["profileImageUrl"] = *req.ProfileImageURL
	}
	if req.CoverImageURL != nil {
		updateDoc["coverImageUrl"] = *req.CoverImageURL
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(req.ID)
}

func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UpdateUserPassword changes the password after verifying the current one,
// then revokes the active session so every device re-authenticates.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return nil, fmt.Errorf("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"passwordHash": string(hash)}); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.RevokeAuthToken(userID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(userID)
}
