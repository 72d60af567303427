package container

import (
	"log/slog"

	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	Store        models.Store
	Tokens       *helpers.TokenManager
	UserService  *services.UserService
	EventService *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, store models.Store) *Container {
	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	userService := services.NewUserService(store, tokens)
	eventService := services.NewEventService(store)

	return &Container{
		Logger:       logger,
		Store:        store,
		Tokens:       tokens,
		UserService:  userService,
		EventService: eventService,
	}
}
