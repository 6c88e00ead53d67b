package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/shared/apperror"
	"learning_backend/internal/shared/ratelimiter"
)

// ErrTooManyRequests is returned once a client exceeds its request budget.
var ErrTooManyRequests = apperror.New(apperror.KindRateLimited, "TOO_MANY_REQUESTS", "Too many requests, please try again later.")

// RateLimit throttles requests per client IP.
func RateLimit(l ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
			api.WriteError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
