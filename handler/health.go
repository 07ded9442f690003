package handler

import (
	"net/http"
	"time"

	"github.com/syncads/paydetect/infra/response"
)

var startTime = time.Now()

// HealthHandler handles health check requests
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Check returns service liveness information. It never touches any gateway.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]any{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(startTime).Round(time.Second).String(),
	})
}
