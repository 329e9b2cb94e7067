// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"

	"bookify/models"
	"bookify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes weekly availability rule endpoints.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
}

func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// SetAvailabilityHandler upserts the caller's rule for one weekday.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rule, err := h.Service.SetRule(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Availability rule rejected", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// GetAvailabilityHandler lists the caller's weekly rules.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	userID := currentUserID(c)

	rules, err := h.Service.GetRules(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to load availability rules", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// DeleteAvailabilityHandler removes the caller's rule for one weekday.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	userID := currentUserID(c)

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be between 0 (Sunday) and 6 (Saturday)"})
		return
	}

	if err := h.Service.DeleteRule(c.Request.Context(), userID, day); err != nil {
		getLogger(c).Error("Failed to delete availability rule", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability removed"})
}
