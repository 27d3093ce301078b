package domain

import "fmt"

// SearchEntityType discriminates what kind of entity a search row refers to.
type SearchEntityType string

const (
	SearchEntityCourse SearchEntityType = "course"
	SearchEntityVideo  SearchEntityType = "video"
	SearchEntityNote   SearchEntityType = "note"
)

// ParseSearchEntityType validates a persisted discriminant.
func ParseSearchEntityType(s string) (SearchEntityType, error) {
	switch SearchEntityType(s) {
	case SearchEntityCourse, SearchEntityVideo, SearchEntityNote:
		return SearchEntityType(s), nil
	default:
		return "", fmt.Errorf("invalid search entity type %q", s)
	}
}

// SearchResult is one full-text search hit.
type SearchResult struct {
	EntityType SearchEntityType `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Title      string           `json:"title"`
	Snippet    string           `json:"snippet"`
	CourseID   string           `json:"course_id"`
}
