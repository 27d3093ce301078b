package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/service"
)

// PlanHandler handles HTTP requests for session planning.
type PlanHandler struct {
	plan *service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plan *service.PlanService) *PlanHandler {
	return &PlanHandler{plan: plan}
}

// PlanRequest optionally overrides the stored cognitive limit; 0 or absent
// means "use preferences".
type PlanRequest struct {
	CognitiveLimitMinutes uint32 `json:"cognitive_limit_minutes"`
}

// Plan computes the study-day plan for a course.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.plan.PlanSession(r.Context(), service.PlanSessionInput{
		CourseID:              chi.URLParam(r, "courseID"),
		CognitiveLimitMinutes: req.CognitiveLimitMinutes,
	})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to plan sessions")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
