package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/service"
)

// CompanionHandler handles HTTP requests for the study companion.
type CompanionHandler struct {
	companion *service.CompanionService
}

// NewCompanionHandler creates a new CompanionHandler.
func NewCompanionHandler(companion *service.CompanionService) *CompanionHandler {
	return &CompanionHandler{companion: companion}
}

// AskRequest carries the learner's question.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse carries the companion's answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask answers a question about a video.
func (h *CompanionHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	answer, err := h.companion.Ask(r.Context(), chi.URLParam(r, "videoID"), req.Question)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to answer question")
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: answer})
}
