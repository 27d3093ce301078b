package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ExportService assembles a course's notes into a Markdown document and an
// HTML rendering of it.
type ExportService struct {
	courses  storage.CourseStore
	modules  storage.ModuleStore
	videos   storage.VideoStore
	notes    storage.NoteStore
	tags     storage.TagStore
	markdown goldmark.Markdown
}

// NewExportService creates an ExportService.
func NewExportService(
	courses storage.CourseStore,
	modules storage.ModuleStore,
	videos storage.VideoStore,
	notes storage.NoteStore,
	tags storage.TagStore,
) *ExportService {
	return &ExportService{
		courses:  courses,
		modules:  modules,
		videos:   videos,
		notes:    notes,
		tags:     tags,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// ExportOutput carries the assembled document in both formats.
type ExportOutput struct {
	CourseName string `json:"course_name"`
	Markdown   string `json:"markdown"`
	HTML       string `json:"html"`
	NotesCount int    `json:"notes_count"`
}

// ExportCourseNotes walks the course's modules in order and collects every
// video note into one document.
func (s *ExportService) ExportCourseNotes(ctx context.Context, courseID string) (*ExportOutput, error) {
	id, err := domain.ParseCourseID(courseID)
	if err != nil {
		return nil, &ValidationError{Field: "course_id", Message: err.Error()}
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, WrapError(err, "failed to load course")
	}

	modules, err := s.modules.FindByCourse(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to load modules")
	}
	courseTags, err := s.tags.FindByCourse(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to load tags")
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s - Notes\n\n", course.Name)
	if course.Description != "" {
		fmt.Fprintf(&doc, "%s\n\n", course.Description)
	}
	if len(courseTags) > 0 {
		names := make([]string, len(courseTags))
		for i, t := range courseTags {
			names[i] = t.Name
		}
		fmt.Fprintf(&doc, "Tags: %s\n\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&doc, "_Exported %s_\n", time.Now().UTC().Format("2006-01-02"))

	notesCount := 0
	for _, module := range modules {
		videos, err := s.videos.FindByModule(ctx, module.ID)
		if err != nil {
			return nil, WrapError(err, "failed to load videos")
		}

		var section strings.Builder
		for _, video := range videos {
			note, err := s.notes.FindByVideo(ctx, video.ID)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, WrapError(err, "failed to load note")
			}
			if strings.TrimSpace(note.Content) == "" {
				continue
			}
			fmt.Fprintf(&section, "### %s\n\n%s\n\n", video.Title, note.Content)
			notesCount++
		}

		if section.Len() > 0 {
			fmt.Fprintf(&doc, "\n## %s\n\n%s", module.Title, section.String())
		}
	}

	md := doc.String()
	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(md), &html); err != nil {
		return nil, WrapError(err, "failed to render notes")
	}

	return &ExportOutput{
		CourseName: course.Name,
		Markdown:   md,
		HTML:       html.String(),
		NotesCount: notesCount,
	}, nil
}
