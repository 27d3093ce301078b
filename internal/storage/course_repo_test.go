package storage

import (
	"context"
	"errors"
	"testing"

	"coursepilot/internal/domain"
)

func TestCourseRepo_SaveAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)
	ctx := context.Background()

	url, err := domain.NewPlaylistURL("https://www.youtube.com/playlist?list=PLgo101")
	if err != nil {
		t.Fatalf("NewPlaylistURL() error = %v", err)
	}
	course := domain.NewCourse(domain.NewCourseID(), "Go Basics", url, url.PlaylistID(), "intro course")

	if err := repo.Save(ctx, course); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.Name != "Go Basics" || loaded.Description != "intro course" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.PlaylistID != "PLgo101" {
		t.Errorf("PlaylistID = %q, want %q", loaded.PlaylistID, "PLgo101")
	}
	if loaded.SourceURL.String() != url.String() {
		t.Errorf("SourceURL = %q, want %q", loaded.SourceURL.String(), url.String())
	}
	if loaded.CreatedAt.IsZero() {
		t.Error("CreatedAt was not persisted")
	}
}

func TestCourseRepo_SaveUpdatesMetadata(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Before")
	if err := course.UpdateMetadata("After", "new description"); err != nil {
		t.Fatalf("UpdateMetadata() error = %v", err)
	}
	if err := repo.Save(ctx, course); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.Name != "After" || loaded.Description != "new description" {
		t.Errorf("loaded = %+v", loaded)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("FindAll() returned %d courses, want 1 after upsert", len(all))
	}
}

func TestCourseRepo_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	_, err := repo.FindByID(context.Background(), domain.NewCourseID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestCourseRepo_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Doomed")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Video 1", 0)

	note := domain.EmptyNoteForVideo(video.ID)
	note.SetContent("some note")
	if err := NewNoteRepo(db).Save(ctx, note); err != nil {
		t.Fatalf("NoteRepo.Save() error = %v", err)
	}

	if err := NewCourseRepo(db).Delete(ctx, course.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := NewModuleRepo(db).FindByID(ctx, module.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("module survived the cascade: %v", err)
	}
	if _, err := NewVideoRepo(db).FindByID(ctx, video.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("video survived the cascade: %v", err)
	}
	if _, err := NewNoteRepo(db).FindByVideo(ctx, video.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("note survived the cascade: %v", err)
	}
}

func TestCourseRepo_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := NewCourseRepo(db).Delete(context.Background(), domain.NewCourseID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
