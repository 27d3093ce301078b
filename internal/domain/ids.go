// Package domain holds the value objects and entities shared by the use cases,
// the storage layer, and the adapters. Values are validated at construction.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity identifiers are opaque UUID strings. Each alias gets its own type so a
// VideoID cannot be passed where a CourseID is expected.
type (
	CourseID string
	ModuleID string
	VideoID  string
	ExamID   string
	NoteID   string
	TagID    string
)

// NewCourseID allocates a fresh course id.
func NewCourseID() CourseID { return CourseID(uuid.New().String()) }

// NewModuleID allocates a fresh module id.
func NewModuleID() ModuleID { return ModuleID(uuid.New().String()) }

// NewVideoID allocates a fresh video id.
func NewVideoID() VideoID { return VideoID(uuid.New().String()) }

// NewExamID allocates a fresh exam id.
func NewExamID() ExamID { return ExamID(uuid.New().String()) }

// NewNoteID allocates a fresh note id.
func NewNoteID() NoteID { return NoteID(uuid.New().String()) }

// NewTagID allocates a fresh tag id.
func NewTagID() TagID { return TagID(uuid.New().String()) }

func (id CourseID) String() string { return string(id) }
func (id ModuleID) String() string { return string(id) }
func (id VideoID) String() string  { return string(id) }
func (id ExamID) String() string   { return string(id) }
func (id NoteID) String() string   { return string(id) }
func (id TagID) String() string    { return string(id) }

// ParseCourseID validates that s is a well-formed UUID.
func ParseCourseID(s string) (CourseID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid course id %q: %w", s, err)
	}
	return CourseID(s), nil
}

// ParseVideoID validates that s is a well-formed UUID.
func ParseVideoID(s string) (VideoID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid video id %q: %w", s, err)
	}
	return VideoID(s), nil
}

// ParseModuleID validates that s is a well-formed UUID.
func ParseModuleID(s string) (ModuleID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid module id %q: %w", s, err)
	}
	return ModuleID(s), nil
}

// ParseTagID validates that s is a well-formed UUID.
func ParseTagID(s string) (TagID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid tag id %q: %w", s, err)
	}
	return TagID(s), nil
}

// ParseExamID validates that s is a well-formed UUID.
func ParseExamID(s string) (ExamID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid exam id %q: %w", s, err)
	}
	return ExamID(s), nil
}
