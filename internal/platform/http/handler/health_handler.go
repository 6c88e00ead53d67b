// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles the /healthz liveness probe.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// StatusResponse is the body of the API root endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Uptime  string `json:"uptime"`
}

// StatusHandler reports that the API is up and for how long.
type StatusHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewStatusHandler creates a StatusHandler measuring uptime from startedAt.
func NewStatusHandler(startedAt time.Time) *StatusHandler {
	return &StatusHandler{startedAt: startedAt, now: time.Now}
}

// Status handles the API root for any method.
func (h *StatusHandler) Status(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "OK",
		Message: "DigitalAcademy API is up and running.",
		Uptime:  FormatUptime(h.now().Sub(h.startedAt)),
	})
}

// FormatUptime renders d as days, hours, minutes and seconds, e.g. "01D:02H:03M:04S".
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%02dD:%02dH:%02dM:%02dS", days, hours, minutes, seconds)
}
