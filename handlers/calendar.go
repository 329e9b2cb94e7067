// File: handlers/calendar.go
package handlers

import (
	"net/http"

	"bookify/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes Google Calendar connection endpoints.
type CalendarHandler struct {
	Service *calendar.GoogleCalendarService
}

func NewCalendarHandler(svc *calendar.GoogleCalendarService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

// CalendarConnectURLHandler returns the Google consent URL for the caller.
func (h *CalendarHandler) CalendarConnectURLHandler(c *gin.Context) {
	userID := currentUserID(c)
	c.JSON(http.StatusOK, gin.H{"url": h.Service.AuthURL(userID)})
}

// CalendarConnectHandler exchanges the OAuth authorization code and stores
// the calendar credentials on the caller's account.
func (h *CalendarHandler) CalendarConnectHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.Connect(c.Request.Context(), userID, req.Code); err != nil {
		logger.Error("Calendar connect failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to connect Google Calendar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar connected"})
}

// CalendarDisconnectHandler removes the caller's stored calendar
// credentials.
func (h *CalendarHandler) CalendarDisconnectHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	if err := h.Service.Disconnect(c.Request.Context(), userID); err != nil {
		logger.Error("Calendar disconnect failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect Google Calendar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar disconnected"})
}
