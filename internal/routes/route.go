package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gatherly/server/internal/container"
	"github.com/gatherly/server/internal/handlers"
	"github.com/gatherly/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	// Every route sees an actor: anonymous without a credential,
	// rejected outright on a bad one. The policy layer decides the rest.
	api.Use(middleware.ResolveActor(container.Tokens, container.Logger))
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"service": "gatherly-api",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(container.UserService))
			auth.POST("/login", handlers.Login(container.UserService))
			auth.GET("/me", handlers.Me(container.UserService))
		}

		events := api.Group("/events")
		{
			events.POST("", handlers.CreateEvent(container.EventService))
			events.GET("", handlers.ListEvents(container.EventService))
			events.GET("/:id", handlers.GetEvent(container.EventService))
		}

		api.POST("/rsvps/event/:event_id", handlers.CreateRSVP(container.EventService))
	}

	return r
}
