package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is where the request ID lives in the gin context.
// Handler error logging uses the same key, so every log line for one
// request shares the same [id] prefix.
const ContextKeyRequestID = "request_id"

// RequestID assigns each request an ID, honoring an X-Request-ID header
// from the caller so IDs can be traced across the frontend and the API.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID returns the request's ID, or an empty string outside the
// RequestID middleware.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyRequestID)
	s, _ := id.(string)
	return s
}

// Logger logs one line per request: method, path, status, latency, and
// client IP, prefixed with the request ID. Health probes are skipped to
// keep load-balancer noise out of the logs.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[%s] %s %s %d %s %s",
			GetRequestID(c),
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
		)
	}
}

// Recovery turns panics into the standard error envelope instead of gin's
// default body, logging the panic under the request ID.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[%s] panic recovered: %v", GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "An internal error occurred",
			},
		})
	})
}
