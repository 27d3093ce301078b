package service

import (
	"context"
	"strings"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// DefaultSearchLimit caps result counts when the caller does not set one.
const DefaultSearchLimit = 20

// SearchService answers full-text queries over courses, videos and notes.
type SearchService struct {
	search storage.SearchStore
}

// NewSearchService creates a SearchService.
func NewSearchService(search storage.SearchStore) *SearchService {
	return &SearchService{search: search}
}

// SearchInput carries a full-text query. EntityType narrows results to a
// single kind when non-empty; Limit of 0 means DefaultSearchLimit.
type SearchInput struct {
	Query      string `json:"query"`
	EntityType string `json:"entity_type"`
	Limit      int    `json:"limit"`
}

// Search runs a prefix-matched full-text query. An empty query returns no
// results rather than an error.
func (s *SearchService) Search(ctx context.Context, input SearchInput) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return []domain.SearchResult{}, nil
	}

	var entityType *domain.SearchEntityType
	if input.EntityType != "" {
		et, err := domain.ParseSearchEntityType(input.EntityType)
		if err != nil {
			return nil, &ValidationError{Field: "entity_type", Message: err.Error()}
		}
		entityType = &et
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := s.search.Search(ctx, query, entityType, limit)
	if err != nil {
		return nil, WrapError(err, "search query failed")
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}
