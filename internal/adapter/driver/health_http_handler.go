package driver

import "net/http"

// HealthHTTPHandler reports process liveness. It does not probe the upstream
// playlist; a failing upstream shows up as 500s on the playlist endpoint.
type HealthHTTPHandler struct{}

// NewHealthHTTPHandler creates a new HTTP handler for health checks.
func NewHealthHTTPHandler() *HealthHTTPHandler {
	return &HealthHTTPHandler{}
}

// healthResponse represents the JSON response for health check endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// ServeHTTP handles GET /health
func (h *HealthHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only GET method is allowed
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
