package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("username and password are required"))
			return
		}

		user, err := u.Register(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user.Sanitize()})
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("username and password are required"))
			return
		}

		token, err := u.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

// Me returns the authenticated actor's own sanitized profile.
func Me(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor.IsAnonymous() {
			respondError(c, models.ErrUnauthenticated)
			return
		}

		user, err := u.GetUser(c.Request.Context(), actor.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user.Sanitize()})
	}
}
