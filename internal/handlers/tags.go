package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// TagsHandler handles HTTP requests for tags and course-tag links.
type TagsHandler struct {
	tags *service.TagService
}

// NewTagsHandler creates a new TagsHandler.
func NewTagsHandler(tags *service.TagService) *TagsHandler {
	return &TagsHandler{tags: tags}
}

// TagResponse is the wire shape of a tag.
type TagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toTagResponses(tags []*domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID.String(), Name: t.Name, Color: t.Color})
	}
	return out
}

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Create stores a new tag.
func (h *TagsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tag, err := h.tags.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to create tag")
		return
	}
	writeJSON(w, http.StatusCreated, TagResponse{ID: tag.ID.String(), Name: tag.Name, Color: tag.Color})
}

// List returns every tag.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list tags")
		return
	}
	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Delete removes a tag and its course links.
func (h *TagsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tagID, err := domain.ParseTagID(chi.URLParam(r, "tagID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tag id")
		return
	}
	if err := h.tags.Delete(r.Context(), tagID); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListForCourse returns the tags linked to a course.
func (h *TagsHandler) ListForCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := domain.ParseCourseID(chi.URLParam(r, "courseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	tags, err := h.tags.ListForCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list course tags")
		return
	}
	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Link attaches a tag to a course.
func (h *TagsHandler) Link(w http.ResponseWriter, r *http.Request) {
	courseID, tagID, ok := h.parseLinkIDs(w, r)
	if !ok {
		return
	}
	if err := h.tags.Link(r.Context(), courseID, tagID); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to link tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unlink detaches a tag from a course.
func (h *TagsHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	courseID, tagID, ok := h.parseLinkIDs(w, r)
	if !ok {
		return
	}
	if err := h.tags.Unlink(r.Context(), courseID, tagID); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to unlink tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TagsHandler) parseLinkIDs(w http.ResponseWriter, r *http.Request) (domain.CourseID, domain.TagID, bool) {
	courseID, err := domain.ParseCourseID(chi.URLParam(r, "courseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return "", "", false
	}
	tagID, err := domain.ParseTagID(chi.URLParam(r, "tagID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tag id")
		return "", "", false
	}
	return courseID, tagID, true
}
