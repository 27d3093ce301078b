package handlers

import (
	"net/http"

	"coursepilot/internal/service"
)

// IngestHandler handles HTTP requests for course ingestion.
type IngestHandler struct {
	ingest *service.IngestService
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingest *service.IngestService) *IngestHandler {
	return &IngestHandler{ingest: ingest}
}

// IngestPlaylistRequest is the payload for playlist ingestion.
type IngestPlaylistRequest struct {
	PlaylistURL string `json:"playlist_url"`
	CourseName  string `json:"course_name"`
}

// Playlist ingests a YouTube playlist into a new course.
func (h *IngestHandler) Playlist(w http.ResponseWriter, r *http.Request) {
	var req IngestPlaylistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.ingest.IngestPlaylist(r.Context(), service.IngestPlaylistInput{
		PlaylistURL: req.PlaylistURL,
		CourseName:  req.CourseName,
	})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to ingest playlist")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// IngestLocalRequest is the payload for local folder ingestion.
type IngestLocalRequest struct {
	RootPath   string `json:"root_path"`
	CourseName string `json:"course_name"`
}

// Local ingests a local media folder into a new course.
func (h *IngestHandler) Local(w http.ResponseWriter, r *http.Request) {
	var req IngestLocalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.ingest.IngestLocal(r.Context(), service.IngestLocalInput{
		RootPath:   req.RootPath,
		CourseName: req.CourseName,
	})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to ingest folder")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}
