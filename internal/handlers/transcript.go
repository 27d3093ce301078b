package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/service"
)

// TranscriptHandler handles HTTP requests for transcripts and summaries.
type TranscriptHandler struct {
	transcripts *service.TranscriptService
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(transcripts *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

// AttachRequest carries raw subtitle text for a video.
type AttachRequest struct {
	Text string `json:"text"`
}

// Attach cleans and stores a manually supplied transcript.
func (h *TranscriptHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req AttachRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.transcripts.AttachTranscript(r.Context(), chi.URLParam(r, "videoID"), req.Text)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to attach transcript")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SummarizeRequest controls cache behavior for summarization.
type SummarizeRequest struct {
	ForceRefresh bool `json:"force_refresh"`
}

// Summarize returns the video's summary, computing it when needed.
func (h *TranscriptHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.transcripts.SummarizeVideo(r.Context(), chi.URLParam(r, "videoID"), req.ForceRefresh)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to summarize video")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
