package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
)

type createEventRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date" binding:"required"`
	Location      string    `json:"location"`
	Capacity      int       `json:"capacity" binding:"required,gt=0"`
	IsPublic      bool      `json:"is_public"`
	RequiresAdmin bool      `json:"requires_admin"`
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The access check runs inside the service so an anonymous caller
		// gets 401 before any payload complaint could leak event rules.
		actor := actorFrom(c)

		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if actor.IsAnonymous() {
				respondError(c, models.ErrUnauthenticated)
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event payload"))
			return
		}

		event := &models.Event{
			Title:         req.Title,
			Description:   req.Description,
			Date:          req.Date,
			Location:      req.Location,
			Capacity:      req.Capacity,
			IsPublic:      req.IsPublic,
			RequiresAdmin: req.RequiresAdmin,
		}

		view, err := es.CreateEvent(c.Request.Context(), actor, event)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, view)
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, models.ErrNotFound)
			return
		}

		view, err := es.GetEvent(c.Request.Context(), actorFrom(c), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		views, total, err := es.ListEvents(c.Request.Context(), actorFrom(c), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(views, page, limit, total))
	}
}
