package api

import (
	"net/http"

	"github.com/heyvishusri/ppt-summary-maker/internal/api/shared"
)

// WelcomeResponse is the body returned by the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// HealthHandler serves the root endpoint used by clients and load
// balancers to check that the service is up.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root handles GET / requests
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message: "Welcome to the PPT Summary Maker API!",
	})
}
