package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
	"coursepilot/internal/storage"
)

func newNotesService(db *sql.DB) *service.NotesService {
	return service.NewNotesService(
		storage.NewVideoRepo(db),
		storage.NewModuleRepo(db),
		storage.NewCourseRepo(db),
		storage.NewTagRepo(db),
		storage.NewNoteRepo(db),
		storage.NewSearchRepo(db),
	)
}

func TestNotesService_SaveAndLoad(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newNotesService(db)

	course := seedCourse(t, db, "Networking")
	module := seedModule(t, db, course.ID, "TCP", 0)
	video := seedVideo(t, db, module.ID, "Handshake", 600, 0)

	saved, err := svc.Save(ctx, video.ID.String(), "three-way handshake notes")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Content != "three-way handshake notes" || saved.VideoTitle != "Handshake" {
		t.Errorf("saved = %+v", saved)
	}
	if saved.ModuleTitle != "TCP" || saved.CourseName != "Networking" {
		t.Errorf("saved context = %+v", saved)
	}

	loaded, err := svc.Load(ctx, video.ID.String())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.NoteID != saved.NoteID || loaded.Content != saved.Content {
		t.Errorf("loaded = %+v, saved = %+v", loaded, saved)
	}

	// The note is searchable after saving.
	results, err := storage.NewSearchRepo(db).Search(ctx, "handshake", nil, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	found := false
	for _, r := range results {
		if r.EntityType == domain.SearchEntityNote && r.EntityID == saved.NoteID.String() {
			found = true
			if !strings.Contains(r.Snippet, "handshake") {
				t.Errorf("snippet = %q", r.Snippet)
			}
		}
	}
	if !found {
		t.Errorf("note missing from search results: %+v", results)
	}
}

func TestNotesService_SaveReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newNotesService(db)

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Video", 600, 0)

	first, err := svc.Save(ctx, video.ID.String(), "draft")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := svc.Save(ctx, video.ID.String(), "final")
	if err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if second.NoteID != first.NoteID {
		t.Errorf("second save allocated a new note: %s vs %s", second.NoteID, first.NoteID)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM notes"); got != 1 {
		t.Errorf("notes rows = %d, want 1", got)
	}
}

func TestNotesService_LoadAndDelete_Absent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newNotesService(db)

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Video", 600, 0)

	if _, err := svc.Load(ctx, video.ID.String()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Load(no note) error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Load(ctx, domain.NewVideoID().String()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Load(absent video) error = %v, want ErrNotFound", err)
	}

	// Deleting a note that does not exist is a no-op.
	if err := svc.Delete(ctx, video.ID.String()); err != nil {
		t.Errorf("Delete(no note) error = %v, want nil", err)
	}
}

func TestNotesService_DeleteRemovesSearchRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newNotesService(db)

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Video", 600, 0)

	saved, err := svc.Save(ctx, video.ID.String(), "ephemeral")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := svc.Delete(ctx, video.ID.String()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Load(ctx, video.ID.String()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Load() after delete error = %v, want ErrNotFound", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM search_index WHERE entity_id = ?", saved.NoteID.String()); got != 0 {
		t.Errorf("search rows for deleted note = %d, want 0", got)
	}
}
