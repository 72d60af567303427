package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/middleware"
	"github.com/gatherly/server/internal/models"
)

// actorFrom returns the identity ResolveActor stored for this request,
// falling back to anonymous if the middleware did not run.
func actorFrom(c *gin.Context) helpers.Actor {
	v, ok := c.Get(middleware.ActorKey)
	if !ok {
		return helpers.Anonymous()
	}
	actor, ok := v.(helpers.Actor)
	if !ok {
		return helpers.Anonymous()
	}
	return actor
}

// respondError maps the service error taxonomy onto the fixed status
// table. Bodies carry only the generic error message, never internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(models.ErrDuplicateUsername.Error()))
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(models.ErrValidation.Error()))
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(models.ErrInvalidCredentials.Error()))
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(models.ErrUnauthenticated.Error()))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse(models.ErrForbidden.Error()))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(models.ErrNotFound.Error()))
	default:
		_ = c.Error(err)
	}
}
