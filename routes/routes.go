package routes

import (
	"time"

	"quadralink/handlers"
	"quadralink/middleware"
	"quadralink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Auth          *handlers.AuthHandler
	Booking       *handlers.BookingHandler
	Counselor     *handlers.CounselorHandler
	Notifications *handlers.NotificationHandler
}

// RegisterAuthRoutes sets up registration, login and institution discovery.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", hb.Auth.Register)
		authGroup.POST("/login", hb.Auth.Login)
	}

	// Public: the registration form needs the institution list before the
	// user has an account.
	r.GET("/api/institutions", hb.Auth.ListInstitutions)
}

// RegisterCounselorRoutes sets up counselor profiles and the booking engine
// endpoints. Status changes on bookings are moderator/admin-only; the other
// booking endpoints enforce ownership inside the engine.
func RegisterCounselorRoutes(r *gin.Engine, hb *HandlerBundle) {
	group := r.Group("/api/councillors")
	group.Use(middleware.JWTAuth())
	{
		group.GET("", hb.Counselor.List)
		group.GET("/:id", hb.Counselor.GetByID)
		group.PUT("/:id/availability", hb.Counselor.UpdateAvailability)
		group.PATCH("/:id/status", hb.Counselor.SetStatus)
		group.PATCH("/:id/limits", hb.Counselor.SetLimits)

		group.POST("/book", hb.Booking.BookSession)
		group.PATCH("/book/:id", middleware.JWTAuth(models.RoleModerator, models.RoleAdmin), hb.Booking.UpdateBooking)
		group.DELETE("/book/:id", hb.Booking.CancelBooking)
		group.GET("/schedule/:id", hb.Booking.GetSchedule)
	}

	adminGroup := r.Group("/api/councillors")
	adminGroup.Use(middleware.JWTAuth(models.RoleAdmin))
	{
		adminGroup.POST("", hb.Counselor.CreateProfile)
	}
}

// RegisterNotificationRoutes sets up the per-user notification inbox.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	group := r.Group("/api/notifications")
	group.Use(middleware.JWTAuth())
	{
		group.GET("", hb.Notifications.List)
		group.PATCH("/:id/read", hb.Notifications.MarkRead)
	}
}

// RegisterHealthRoute exposes the aggregated health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCounselorRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
