package routes

import (
	"net/http"
	"time"

	userRepo "chorus/database/repository/user"
	"chorus/handlers"
	"chorus/middleware"
	"chorus/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and repositories route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth       *handlers.AuthHandler
	Reminders  *handlers.ReminderHandler
	Concerts   *handlers.ConcertHandler
	UserDevice *handlers.UserDeviceHandler
	Health     *handlers.HealthHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", hb.Health.LivenessHandler)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", hb.Auth.LoginHandler)
	}

	users := r.Group("/api/users")
	users.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		users.PUT("/me/push-token", hb.UserDevice.SetPushTokenHandler)
	}

	reminders := r.Group("/api/reminders")
	reminders.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		reminders.GET("", hb.Reminders.ListRemindersHandler)
		reminders.GET("/options", handlers.ReminderOptionsHandler)

		// Mutations are restricted to administrators.
		admin := reminders.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Reminders.CreateReminderHandler)
		admin.PUT("/:id", hb.Reminders.UpdateReminderHandler)
		admin.DELETE("/:id", hb.Reminders.DeleteReminderHandler)
	}

	concerts := r.Group("/api/concerts")
	concerts.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		concerts.GET("", hb.Concerts.ListConcertsHandler)
		concerts.GET("/browse", hb.Concerts.BrowseConcertsHandler)
		concerts.GET("/types", hb.Concerts.ConcertTypeOptionsHandler)
		concerts.GET("/:id", hb.Concerts.GetConcertHandler)

		admin := concerts.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Concerts.CreateConcertHandler)
		admin.PUT("/:id", hb.Concerts.UpdateConcertHandler)
		admin.DELETE("/:id", hb.Concerts.DeleteConcertHandler)
	}

	notifications := r.Group("/api/notifications")
	notifications.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
	{
		notifications.GET("/health", hb.Health.TokenHealthHandler)
	}
}
