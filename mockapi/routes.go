package mockapi

import (
	"carexpert/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every mock backend endpoint.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", AuthMiddleware(), h.Me)
	}

	patient := r.Group("/api/patient", AuthMiddleware())
	{
		patient.GET("/fetchAllDoctors", h.FetchAllDoctors)

		booking := patient.Group("", RequireRole(models.RolePatient))
		{
			booking.POST("/book-direct-appointment", h.BookDirectAppointment)
			booking.GET("/appointments", h.PatientAppointments)
			booking.POST("/appointments/:id/cancel", h.CancelAppointment)
			booking.GET("/prescriptions", h.PatientPrescriptions)
		}
	}

	doctor := r.Group("/api/doctor", AuthMiddleware(), RequireRole(models.RoleDoctor))
	{
		doctor.GET("/pending-requests", h.PendingRequests)
		doctor.POST("/requests/:id/respond", h.RespondToRequest)
		doctor.GET("/appointments", h.DoctorAppointments)
	}

	chat := r.Group("/api/chat", AuthMiddleware())
	{
		chat.GET("/:peerID", h.Conversation)
		chat.POST("/:peerID", h.SendMessage)
	}

	notifications := r.Group("/api/notifications", AuthMiddleware())
	{
		notifications.GET("", h.Notifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)
	}

	admin := r.Group("/api/admin", AuthMiddleware(), RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", h.AllUsers)
	}
}
