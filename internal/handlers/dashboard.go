package handlers

import (
	"net/http"

	"coursepilot/internal/service"
)

// DashboardHandler handles HTTP requests for aggregate analytics.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Load returns library-wide analytics.
func (h *DashboardHandler) Load(w http.ResponseWriter, r *http.Request) {
	out, err := h.dashboard.Load(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
