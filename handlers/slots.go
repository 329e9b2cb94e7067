// File: handlers/slots.go
package handlers

import (
	"errors"
	"net/http"

	"bookify/scheduling"
	"bookify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotsHandler exposes the public slot lookup endpoint.
type SlotsHandler struct {
	Engine booking.SlotEngine
}

func NewSlotsHandler(engine booking.SlotEngine) *SlotsHandler {
	return &SlotsHandler{Engine: engine}
}

// GetAvailableSlotsHandler returns the bookable slots for a business's
// service on one date. Responds 404 when the business has no availability
// rule for that weekday, 422 when the stored rule cannot be resolved to a
// valid window on that date, and 400 for malformed query parameters.
func (h *SlotsHandler) GetAvailableSlotsHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("id")

	date := c.Query("date")
	serviceID := c.Query("service_id")
	if date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and service_id query parameters are required"})
		return
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), userID, serviceID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrNoAvailability):
			c.JSON(http.StatusNotFound, gin.H{"error": "No availability on this date"})
		case errors.Is(err, scheduling.ErrInvalidTimezone),
			errors.Is(err, scheduling.ErrInvalidWindow),
			errors.Is(err, scheduling.ErrAmbiguousLocalTime):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Warn("Slot lookup failed",
				zap.String("userID", userID),
				zap.String("serviceID", serviceID),
				zap.String("date", date),
				zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "service_id": serviceID, "slots": slots})
}
