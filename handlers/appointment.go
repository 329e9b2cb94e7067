// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"bookify/models"
	"bookify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking endpoints. Booking itself is public
// (customers have no accounts); listing and cancelling are owner-only.
type AppointmentHandler struct {
	Service booking.AppointmentService
}

func NewAppointmentHandler(svc booking.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookAppointmentHandler creates a confirmed appointment. Responds 409
// when the requested interval has been taken since the slot was offered.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "This time is no longer available"})
			return
		}
		logger.Warn("Booking failed",
			zap.String("userID", req.UserID),
			zap.String("serviceID", req.ServiceID),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler lists the caller's confirmed appointments in an
// optional ?from=&to= RFC3339 range, defaulting to the next 30 days.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	userID := currentUserID(c)

	from := time.Now().UTC()
	to := from.AddDate(0, 0, 30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339"})
			return
		}
		from = parsed.UTC()
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339"})
			return
		}
		to = parsed.UTC()
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be after from"})
		return
	}

	appts, err := h.Service.ListAppointments(c.Request.Context(), userID, from, to)
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler returns one of the caller's appointments.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	userID := currentUserID(c)

	appt, err := h.Service.GetAppointment(c.Request.Context(), userID, c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler marks one of the caller's appointments as
// cancelled, freeing the slot.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.Service.CancelAppointment(c.Request.Context(), userID, c.Param("appointmentId")); err != nil {
		getLogger(c).Warn("Cancellation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Cancellation failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
