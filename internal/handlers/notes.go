package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/service"
)

// NotesHandler handles HTTP requests for per-video notes and note export.
type NotesHandler struct {
	notes  *service.NotesService
	export *service.ExportService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notes *service.NotesService, export *service.ExportService) *NotesHandler {
	return &NotesHandler{notes: notes, export: export}
}

// SaveNoteRequest carries the full replacement note content.
type SaveNoteRequest struct {
	Content string `json:"content"`
}

// Save creates or replaces the video's note.
func (h *NotesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	view, err := h.notes.Save(r.Context(), chi.URLParam(r, "videoID"), req.Content)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to save note")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Load returns the video's note with its course context.
func (h *NotesHandler) Load(w http.ResponseWriter, r *http.Request) {
	view, err := h.notes.Load(r.Context(), chi.URLParam(r, "videoID"))
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to load note")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete removes the video's note; deleting a missing note succeeds.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), chi.URLParam(r, "videoID")); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export assembles all of a course's notes into one document.
func (h *NotesHandler) Export(w http.ResponseWriter, r *http.Request) {
	out, err := h.export.ExportCourseNotes(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to export notes")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
