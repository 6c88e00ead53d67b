package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/shared/apperror"
)

var (
	// ErrInvalidRequest is returned when a body or query cannot be bound.
	ErrInvalidRequest = apperror.New(apperror.KindValidation, "INVALID_INPUT", "Invalid Input Data")

	errUnknown = apperror.New(apperror.KindUnknown, apperror.CodeUnknown, apperror.MessageUnknown)
)

// now is replaced in tests.
var now = time.Now

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindRateLimited:
		return http.StatusTooManyRequests
	case apperror.KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// WriteError aborts the request with the structured error body for err.
// Errors outside the taxonomy are reported with a fixed message; their text never reaches the client.
func WriteError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = errUnknown
	}

	status := StatusFor(appErr.Kind)
	if status >= http.StatusInternalServerError && appErr.Kind != apperror.KindNotImplemented {
		slog.Error("request failed",
			"error", err,
			"kind", appErr.Kind.String(),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
		)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}
