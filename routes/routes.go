// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"bookify/handlers"
	"bookify/middleware"
	"bookify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterUserRoutes registers the public booking-page endpoints and the
// authenticated account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// Public booking-page endpoints. Customers need no account.
		api.GET("/:id", hb.GetPublicProfileHandler)
		api.GET("/:id/services", hb.ListPublicServicesHandler)
		api.GET("/:id/slots", hb.GetAvailableSlotsHandler)

		// Protected account endpoints (require authentication).
		me := api.Group("/me")
		me.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		{
			me.GET("", hb.GetCurrentUserHandler)
			me.PATCH("", hb.UpdateUserHandler)
			me.DELETE("", hb.DeleteUserHandler)
			me.PUT("/password", hb.UpdateUserPasswordHandler)
			me.DELETE("/token", hb.RevokeUserAuthTokenHandler)

			// Weekly availability rules.
			me.PUT("/availability", hb.SetAvailabilityHandler)
			me.GET("/availability", hb.GetAvailabilityHandler)
			me.DELETE("/availability/:day", hb.DeleteAvailabilityHandler)

			// Service catalog management.
			me.POST("/services", hb.CreateServiceHandler)
			me.GET("/services", hb.ListOwnServicesHandler)
			me.PATCH("/services/:serviceId", hb.UpdateServiceHandler)
			me.DELETE("/services/:serviceId", hb.DeleteServiceHandler)

			// Google Calendar connection.
			me.GET("/calendar/connect-url", hb.CalendarConnectURLHandler)
			me.POST("/calendar/connect", hb.CalendarConnectHandler)
			me.DELETE("/calendar", hb.CalendarDisconnectHandler)

			// Profile media uploads.
			me.GET("/upload-url", hb.UploadURLHandler)
		}
	}
}

// RegisterAppointmentRoutes registers booking endpoints. Creating an
// appointment is public; managing them requires authentication.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointmentHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.GET("", hb.ListAppointmentsHandler)
		protected.GET("/:appointmentId", hb.GetAppointmentHandler)
		protected.DELETE("/:appointmentId", hb.CancelAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Bookify",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
