package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// CourseHandler handles HTTP requests for courses, modules, and videos.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// CourseResponse is the wire shape of a course.
type CourseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SourceURL   string    `json:"source_url"`
	PlaylistID  string    `json:"playlist_id"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ModuleResponse is the wire shape of a module with its videos.
type ModuleResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	SortOrder uint32          `json:"sort_order"`
	Videos    []VideoResponse `json:"videos"`
}

// VideoResponse is the wire shape of a video.
type VideoResponse struct {
	ID           string `json:"id"`
	ModuleID     string `json:"module_id"`
	SourceType   string `json:"source_type"`
	SourceRef    string `json:"source_ref"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	DurationSecs uint32 `json:"duration_secs"`
	IsCompleted  bool   `json:"is_completed"`
	SortOrder    uint32 `json:"sort_order"`
	HasSummary   bool   `json:"has_summary"`
}

// CourseDetailResponse is a course with its full module tree.
type CourseDetailResponse struct {
	CourseResponse
	Modules []ModuleResponse `json:"modules"`
}

func toCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		SourceURL:   c.SourceURL.String(),
		PlaylistID:  c.PlaylistID,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toVideoResponse(v *domain.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID.String(),
		ModuleID:     v.ModuleID.String(),
		SourceType:   string(v.Source.Type()),
		SourceRef:    v.Source.Ref(),
		Title:        v.Title,
		Description:  v.Description,
		DurationSecs: v.DurationSecs,
		IsCompleted:  v.IsCompleted,
		SortOrder:    v.SortOrder,
		HasSummary:   v.Summary != "",
	}
}

// List returns all courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list courses")
		return
	}
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns one course with its modules and videos.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.courses.Get(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to load course")
		return
	}

	resp := CourseDetailResponse{
		CourseResponse: toCourseResponse(detail.Course),
		Modules:        make([]ModuleResponse, 0, len(detail.Modules)),
	}
	for _, m := range detail.Modules {
		mr := ModuleResponse{
			ID:        m.Module.ID.String(),
			Title:     m.Module.Title,
			SortOrder: m.Module.SortOrder,
			Videos:    make([]VideoResponse, 0, len(m.Videos)),
		}
		for _, v := range m.Videos {
			mr.Videos = append(mr.Videos, toVideoResponse(v))
		}
		resp.Modules = append(resp.Modules, mr)
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateCourseRequest is the payload for course metadata updates.
type UpdateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Update renames a course and replaces its description.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCourseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.courses.UpdateMetadata(r.Context(), chi.URLParam(r, "courseID"), req.Name, req.Description)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update course")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a course and everything under it.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.courses.Delete(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete course")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateModuleRequest is the payload for module title updates.
type UpdateModuleRequest struct {
	Title string `json:"title"`
}

// UpdateModule renames a module.
func (h *CourseHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	var req UpdateModuleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.courses.UpdateModuleTitle(r.Context(), chi.URLParam(r, "moduleID"), req.Title)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update module")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveVideoRequest is the payload for moving a video between modules.
type MoveVideoRequest struct {
	TargetModuleID string `json:"target_module_id"`
}

// MoveVideo moves a video to another module within the same course.
func (h *CourseHandler) MoveVideo(w http.ResponseWriter, r *http.Request) {
	var req MoveVideoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.courses.MoveVideoToModule(r.Context(), chi.URLParam(r, "videoID"), req.TargetModuleID)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to move video")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCompletedRequest is the payload for completion toggling.
type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

// SetCompleted marks a video watched or unwatched.
func (h *CourseHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	var req SetCompletedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.courses.SetVideoCompleted(r.Context(), chi.URLParam(r, "videoID"), req.Completed)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update video")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
