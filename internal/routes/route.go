package routes

import (
	"github.com/adjei-dev/gatherly/internal/container"
	"github.com/adjei-dev/gatherly/internal/handlers"
	"github.com/adjei-dev/gatherly/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "gatherly-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateUser(container.UserService))
		v1.POST("/login", handlers.AuthenticateUser(container.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.POST("/refresh", handlers.RefreshSession(container.UserService))

		// Event reads are public; the radius/search/category filters ride
		// on the list endpoint's query string.
		v1.GET("/events", handlers.ListEvents(container.EventService, container.Logger))
		v1.GET("/events/:id", handlers.GetEventByID(container.EventService, container.EventViewsService, container.Logger))
		v1.GET("/events/:id/participants-count", handlers.ParticipantsCount(container.ParticipationService, container.Logger))
		v1.GET("/events/:id/participants", handlers.ListParticipants(container.ParticipationService, container.Logger))
		v1.GET("/events/:id/spots-remaining", handlers.SpotsRemaining(container.ParticipationService))
		v1.GET("/events/:id/views", handlers.EventViewStats(container.EventViewsService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("/create", handlers.CreateEvent(container.EventService))
		eventRoutes.PATCH("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
		eventRoutes.POST("/:id/join", handlers.JoinEvent(container.ParticipationService))
		eventRoutes.POST("/:id/leave", handlers.LeaveEvent(container.ParticipationService))
		eventRoutes.POST("/:id/save", handlers.SaveEvent(container.SavedEventsService))
		eventRoutes.DELETE("/:id/save", handlers.UnsaveEvent(container.SavedEventsService))
	}

	profileRoutes := protected.Group("/profile")
	{
		profileRoutes.GET("", handlers.GetProfile(container.UserService))
		profileRoutes.GET("/events", handlers.MyEvents(container.UserService))
		profileRoutes.GET("/joined", handlers.JoinedEvents(container.UserService))
		profileRoutes.GET("/saved", handlers.ListSavedEvents(container.SavedEventsService))
	}

	return r
}
