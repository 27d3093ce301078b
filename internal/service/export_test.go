package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
	"coursepilot/internal/storage"
)

func TestExportService_ExportCourseNotes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Compilers")
	m1 := seedModule(t, db, course.ID, "Lexing", 0)
	m2 := seedModule(t, db, course.ID, "Parsing", 1)
	v1 := seedVideo(t, db, m1.ID, "Tokens", 600, 0)
	v2 := seedVideo(t, db, m2.ID, "Grammars", 600, 0)
	seedVideo(t, db, m2.ID, "No notes here", 600, 1)

	noteRepo := storage.NewNoteRepo(db)
	for _, item := range []struct {
		videoID domain.VideoID
		content string
	}{
		{v1.ID, "**regular** languages"},
		{v2.ID, "context-free grammars"},
	} {
		note := domain.EmptyNoteForVideo(item.videoID)
		note.SetContent(item.content)
		if err := noteRepo.Save(ctx, note); err != nil {
			t.Fatalf("NoteRepo.Save() error = %v", err)
		}
	}

	tagRepo := storage.NewTagRepo(db)
	tag := domain.NewTag(domain.NewTagID(), "theory", "#888888")
	if err := tagRepo.Save(ctx, tag); err != nil {
		t.Fatalf("TagRepo.Save() error = %v", err)
	}
	if err := tagRepo.LinkCourse(ctx, course.ID, tag.ID); err != nil {
		t.Fatalf("LinkCourse() error = %v", err)
	}

	svc := service.NewExportService(
		storage.NewCourseRepo(db),
		storage.NewModuleRepo(db),
		storage.NewVideoRepo(db),
		noteRepo,
		tagRepo,
	)

	out, err := svc.ExportCourseNotes(ctx, course.ID.String())
	if err != nil {
		t.Fatalf("ExportCourseNotes() error = %v", err)
	}
	if out.CourseName != "Compilers" || out.NotesCount != 2 {
		t.Errorf("output = name %q, notes %d", out.CourseName, out.NotesCount)
	}

	for _, want := range []string{
		"# Compilers - Notes",
		"Tags: theory",
		"## Lexing",
		"### Tokens",
		"**regular** languages",
		"## Parsing",
		"### Grammars",
	} {
		if !strings.Contains(out.Markdown, want) {
			t.Errorf("Markdown missing %q:\n%s", want, out.Markdown)
		}
	}
	if strings.Contains(out.Markdown, "No notes here") {
		t.Error("Markdown includes a video without a note")
	}

	// Markdown emphasis renders as HTML.
	if !strings.Contains(out.HTML, "<strong>regular</strong>") {
		t.Errorf("HTML missing rendered markdown:\n%s", out.HTML)
	}
}

func TestExportService_ExportCourseNotes_Errors(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := service.NewExportService(
		storage.NewCourseRepo(db),
		storage.NewModuleRepo(db),
		storage.NewVideoRepo(db),
		storage.NewNoteRepo(db),
		storage.NewTagRepo(db),
	)

	if _, err := svc.ExportCourseNotes(ctx, "nope"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("ExportCourseNotes(bad id) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.ExportCourseNotes(ctx, domain.NewCourseID().String()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("ExportCourseNotes(absent) error = %v, want ErrNotFound", err)
	}
}
