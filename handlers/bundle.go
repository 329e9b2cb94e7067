// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "bookify/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays declarative.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth & account endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	GetCurrentUserHandler      gin.HandlerFunc
	GetPublicProfileHandler    gin.HandlerFunc
	UpdateUserHandler          gin.HandlerFunc
	DeleteUserHandler          gin.HandlerFunc
	UpdateUserPasswordHandler  gin.HandlerFunc

	// Service catalog endpoints
	CreateServiceHandler      gin.HandlerFunc
	ListOwnServicesHandler    gin.HandlerFunc
	ListPublicServicesHandler gin.HandlerFunc
	UpdateServiceHandler      gin.HandlerFunc
	DeleteServiceHandler      gin.HandlerFunc

	// Availability endpoints
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc

	// Slot & appointment endpoints
	GetAvailableSlotsHandler gin.HandlerFunc
	BookAppointmentHandler   gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Google Calendar endpoints
	CalendarConnectURLHandler gin.HandlerFunc
	CalendarConnectHandler    gin.HandlerFunc
	CalendarDisconnectHandler gin.HandlerFunc

	// Storage endpoints
	UploadURLHandler gin.HandlerFunc
}
