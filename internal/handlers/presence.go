package handlers

import (
	"net/http"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// PresenceHandler handles HTTP requests for the presence integration.
type PresenceHandler struct {
	presence *service.PresenceService
}

// NewPresenceHandler creates a new PresenceHandler.
func NewPresenceHandler(presence *service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// UpdatePresenceRequest names the video currently being watched.
type UpdatePresenceRequest struct {
	VideoID string `json:"video_id"`
}

// Update publishes the currently watched video.
func (h *PresenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePresenceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	videoID, err := domain.ParseVideoID(req.VideoID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video_id")
		return
	}
	if err := h.presence.UpdatePresence(r.Context(), videoID); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update presence")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes the published activity.
func (h *PresenceHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.presence.ClearPresence(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
