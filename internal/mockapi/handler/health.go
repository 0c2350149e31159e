package handler

import (
	"net/http"

	"github.com/negociacion/admin/internal/mockapi/response"
)

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

type healthData struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ServeHTTP reports that the mock is up.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, healthData{Status: "healthy", Version: h.version})
}
