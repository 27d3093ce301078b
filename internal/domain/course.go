package domain

import (
	"fmt"
	"strings"
	"time"
)

// Course is the root aggregate: a playlist (or local folder) ingested into
// modules and videos.
type Course struct {
	ID          CourseID
	Name        string
	SourceURL   PlaylistURL
	PlaylistID  string
	Description string // empty means none
	CreatedAt   time.Time
}

// NewCourse builds a course. Immutable after creation except name/description via
// UpdateMetadata.
func NewCourse(id CourseID, name string, sourceURL PlaylistURL, playlistID, description string) *Course {
	return &Course{
		ID:          id,
		Name:        name,
		SourceURL:   sourceURL,
		PlaylistID:  playlistID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// UpdateMetadata renames the course and/or replaces its description. The name
// must be non-empty after trimming.
func (c *Course) UpdateMetadata(name, description string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("course name cannot be empty")
	}
	c.Name = trimmed
	c.Description = description
	return nil
}

// Module is a contiguous, titled group of videos within a course. Ordering is
// explicit via SortOrder, not implied by creation time.
type Module struct {
	ID        ModuleID
	CourseID  CourseID
	Title     string
	SortOrder uint32
}

// NewModule builds a module.
func NewModule(id ModuleID, courseID CourseID, title string, sortOrder uint32) *Module {
	return &Module{ID: id, CourseID: courseID, Title: title, SortOrder: sortOrder}
}

// Rename replaces the module title; it must be non-empty after trimming.
func (m *Module) Rename(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("module title cannot be empty")
	}
	m.Title = trimmed
	return nil
}

// Video belongs to exactly one module. DurationSecs is authoritative; SortOrder
// is within the parent module. Transcript and Summary are set lazily.
type Video struct {
	ID           VideoID
	ModuleID     ModuleID
	Source       VideoSource
	Title        string
	Description  string // empty means none
	DurationSecs uint32
	IsCompleted  bool
	SortOrder    uint32
	Transcript   string // empty means none
	Summary      string // empty means none
}

// NewVideo builds a video without a description.
func NewVideo(id VideoID, moduleID ModuleID, source VideoSource, title string, durationSecs, sortOrder uint32) *Video {
	return &Video{
		ID:           id,
		ModuleID:     moduleID,
		Source:       source,
		Title:        title,
		DurationSecs: durationSecs,
		SortOrder:    sortOrder,
	}
}

// NewVideoWithDescription builds a video carrying the raw source description.
func NewVideoWithDescription(id VideoID, moduleID ModuleID, source VideoSource, title, description string, durationSecs, sortOrder uint32) *Video {
	v := NewVideo(id, moduleID, source, title, durationSecs, sortOrder)
	v.Description = description
	return v
}
