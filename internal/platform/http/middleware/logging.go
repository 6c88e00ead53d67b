// Package middleware holds gin middleware shared by every route group.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the gin context key for the request ID.
const ContextRequestID = "requestID"

// RequestLogger assigns a request ID and logs one line per request.
// An incoming X-Request-ID is kept when it parses as a UUID.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).Round(time.Microsecond),
			"remote_addr", c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Error("http request", attrs...)
		case status >= 400:
			logger.Warn("http request", attrs...)
		default:
			logger.Info("http request", attrs...)
		}
	}
}
