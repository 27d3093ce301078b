package handlers

import (
	"net/http"
	"strconv"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// SearchHandler handles HTTP requests for full-text search.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SearchResultResponse is the wire shape of one search hit.
type SearchResultResponse struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	CourseID   string `json:"course_id"`
}

// Search runs a full-text query from ?q=, optionally narrowed by
// ?entity_type= and capped by ?limit=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	results, err := h.search.Search(r.Context(), service.SearchInput{
		Query:      r.URL.Query().Get("q"),
		EntityType: r.URL.Query().Get("entity_type"),
		Limit:      limit,
	})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Search failed")
		return
	}

	out := make([]SearchResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, toSearchResultResponse(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func toSearchResultResponse(res domain.SearchResult) SearchResultResponse {
	return SearchResultResponse{
		EntityType: string(res.EntityType),
		EntityID:   res.EntityID,
		Title:      res.Title,
		Snippet:    res.Snippet,
		CourseID:   res.CourseID,
	}
}
