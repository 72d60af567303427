package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
)

// ActorKey is the context key under which ResolveActor stores the
// request's identity.
const ActorKey = "actor"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized handling for errors that escaped
// the handlers themselves.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
		}
	}
}

// ResolveActor turns the optional Authorization header into an Actor in
// the request context. No header at all resolves to the anonymous
// actor; a header that is malformed, tampered with or expired aborts
// with 401 rather than silently downgrading to anonymous.
func ResolveActor(tokens *helpers.TokenManager, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(ActorKey, helpers.Anonymous())
			c.Next()
			return
		}

		raw, err := helpers.TokenFromHeader(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid or expired token"))
			c.Abort()
			return
		}

		actor, err := helpers.ActorFromClaims(claims)
		if err != nil {
			logger.Error("Token carried unusable subject", "subject", claims.Subject)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}
