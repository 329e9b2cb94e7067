// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookify/models"
	"bookify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// authTokenTTL bounds how long an issued session token stays valid.
const authTokenTTL = 24 * time.Hour

// Register creates a business account and signs the new user in.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}
	if existing, _ := s.Repo.GetByUsername(data.Username); existing != nil {
		return nil, fmt.Errorf("username %s is already taken", data.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:                    uuid.New().String(),
		Username:              data.Username,
		BusinessName:          data.BusinessName,
		Email:                 email,
		PasswordHash:          string(hash),
		Location:              data.Location,
		PhoneNumber:           data.PhoneNumber,
		PhoneNumberIsWhatsapp: data.PhoneNumberIsWhatsapp,
		Description:           data.Description,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"lastLogin": now}); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to record last login for %s: %v", usr.ID, err)
	}
	usr.LastLogin = now

	return s.issueToken(usr)
}

// RevokeAuthToken invalidates the active session token for a user.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to drop auth cache for %s: %v", userID, err)
	}
	return nil
}

// issueToken generates a JWT, persists its hash for revocation checks and
// primes the auth cache.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	usr.TokenHash = tokenHash

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), utils.AuthCachePrefix+usr.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to prime auth cache for %s: %v", usr.ID, err)
	}

	return &AuthResponse{ID: usr.ID, Token: token, User: usr}, nil
}
