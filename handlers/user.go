// File: handlers/user.go
package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account management endpoints over the UserService.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler creates a new business account and returns an auth
// token alongside the profile.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler verifies credentials and issues a token.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeUserAuthTokenHandler invalidates the caller's current token.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	if err := h.Service.RevokeAuthToken(userID); err != nil {
		logger.Error("Token revocation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// GetCurrentUserHandler returns the authenticated user's own profile.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		logger.Error("Failed to load user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetPublicProfileHandler returns the public subset of a business's
// profile for the booking page.
func (h *UserHandler) GetPublicProfileHandler(c *gin.Context) {
	usr, err := h.Service.GetUserByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr.PublicProfile())
}

// UpdateUserHandler applies a partial profile update for the caller.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = userID

	usr, err := h.Service.UpdateUser(req)
	if err != nil {
		logger.Error("User update failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler permanently deletes the caller's account.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	if err := h.Service.DeleteUser(userID); err != nil {
		logger.Error("User deletion failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// UpdateUserPasswordHandler changes the caller's password after verifying
// the current one, revoking any outstanding token.
func (h *UserHandler) UpdateUserPasswordHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Service.UpdateUserPassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		logger.Warn("Password update failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
