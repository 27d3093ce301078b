package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// RelatedHandler handles HTTP requests for related-video lookup.
type RelatedHandler struct {
	related *service.RelatedService
}

// NewRelatedHandler creates a new RelatedHandler.
func NewRelatedHandler(related *service.RelatedService) *RelatedHandler {
	return &RelatedHandler{related: related}
}

// Find returns videos whose titles are nearest to the given video's.
func (h *RelatedHandler) Find(w http.ResponseWriter, r *http.Request) {
	videoID, err := domain.ParseVideoID(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	related, err := h.related.FindRelatedVideos(r.Context(), videoID, limit)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to find related videos")
		return
	}
	writeJSON(w, http.StatusOK, related)
}
