package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
)

type rsvpRequest struct {
	Attending *bool `json:"attending" binding:"required"`
}

// CreateRSVP records a response to an event. Anonymous callers are
// allowed through; the service rejects them for non-public events.
func CreateRSVP(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := uuid.Parse(c.Param("event_id"))
		if err != nil {
			respondError(c, models.ErrNotFound)
			return
		}

		var req rsvpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("attending is required"))
			return
		}

		view, err := es.RSVP(c.Request.Context(), actorFrom(c), eventID, *req.Attending)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, view)
	}
}
