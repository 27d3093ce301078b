package storage

import (
	"context"
	"errors"
	"testing"

	"coursepilot/internal/domain"
)

func TestVideoRepo_SaveAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)

	ytID, err := domain.NewYouTubeVideoID("abcDEF12345")
	if err != nil {
		t.Fatalf("NewYouTubeVideoID() error = %v", err)
	}
	video := domain.NewVideoWithDescription(
		domain.NewVideoID(), module.ID, domain.YouTubeSource(ytID),
		"Channels Deep Dive", "all about channels", 1234, 3,
	)
	if err := repo.Save(ctx, video); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.Title != "Channels Deep Dive" || loaded.Description != "all about channels" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.DurationSecs != 1234 || loaded.SortOrder != 3 || loaded.IsCompleted {
		t.Errorf("loaded = %+v", loaded)
	}
	if got, ok := loaded.Source.YouTubeID(); !ok || got != ytID {
		t.Errorf("Source.YouTubeID() = %q, %v", got, ok)
	}
}

func TestVideoRepo_LocalSourceRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)

	source, err := domain.LocalSource("/media/lectures/intro.mkv")
	if err != nil {
		t.Fatalf("LocalSource() error = %v", err)
	}
	video := domain.NewVideo(domain.NewVideoID(), module.ID, source, "Intro", 300, 0)
	if err := repo.Save(ctx, video); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if path, ok := loaded.Source.LocalPath(); !ok || path != "/media/lectures/intro.mkv" {
		t.Errorf("Source.LocalPath() = %q, %v", path, ok)
	}
}

func TestVideoRepo_FindByModuleOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)

	seedVideo(t, db, module.ID, "second", 1)
	seedVideo(t, db, module.ID, "first", 0)
	seedVideo(t, db, module.ID, "third", 2)

	videos, err := repo.FindByModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("FindByModule() error = %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("FindByModule() returned %d videos, want 3", len(videos))
	}
	for i, want := range []string{"first", "second", "third"} {
		if videos[i].Title != want {
			t.Errorf("videos[%d].Title = %q, want %q", i, videos[i].Title, want)
		}
	}
}

func TestVideoRepo_FindByCourseOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	later := seedModule(t, db, course.ID, "Module 2", 1)
	earlier := seedModule(t, db, course.ID, "Module 1", 0)

	seedVideo(t, db, later.ID, "m2v0", 0)
	seedVideo(t, db, earlier.ID, "m1v1", 1)
	seedVideo(t, db, earlier.ID, "m1v0", 0)

	videos, err := repo.FindByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("FindByCourse() error = %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("FindByCourse() returned %d videos, want 3", len(videos))
	}
	for i, want := range []string{"m1v0", "m1v1", "m2v0"} {
		if videos[i].Title != want {
			t.Errorf("videos[%d].Title = %q, want %q", i, videos[i].Title, want)
		}
	}
}

func TestVideoRepo_Updates(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Video", 0)

	if err := repo.UpdateTranscript(ctx, video.ID, "hello world"); err != nil {
		t.Fatalf("UpdateTranscript() error = %v", err)
	}
	if err := repo.UpdateSummary(ctx, video.ID, "a summary"); err != nil {
		t.Fatalf("UpdateSummary() error = %v", err)
	}
	if err := repo.UpdateCompletion(ctx, video.ID, true); err != nil {
		t.Fatalf("UpdateCompletion() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.Transcript != "hello world" || loaded.Summary != "a summary" || !loaded.IsCompleted {
		t.Errorf("loaded = %+v", loaded)
	}

	if err := repo.UpdateTranscript(ctx, domain.NewVideoID(), "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTranscript(absent) error = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateCompletion(ctx, domain.NewVideoID(), true); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCompletion(absent) error = %v, want ErrNotFound", err)
	}
}

func TestVideoRepo_MoveToModule(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	from := seedModule(t, db, course.ID, "From", 0)
	to := seedModule(t, db, course.ID, "To", 1)
	video := seedVideo(t, db, from.ID, "Moving", 0)

	if err := repo.MoveToModule(ctx, video.ID, to.ID, 7); err != nil {
		t.Fatalf("MoveToModule() error = %v", err)
	}

	loaded, err := repo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.ModuleID != to.ID || loaded.SortOrder != 7 {
		t.Errorf("loaded = %+v", loaded)
	}

	if err := repo.MoveToModule(ctx, domain.NewVideoID(), to.ID, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("MoveToModule(absent) error = %v, want ErrNotFound", err)
	}
}

func TestVideoRepo_NextSortOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)

	next, err := repo.NextSortOrder(ctx, module.ID)
	if err != nil {
		t.Fatalf("NextSortOrder() error = %v", err)
	}
	if next != 0 {
		t.Errorf("NextSortOrder(empty module) = %d, want 0", next)
	}

	seedVideo(t, db, module.ID, "a", 0)
	seedVideo(t, db, module.ID, "b", 4)

	next, err = repo.NextSortOrder(ctx, module.ID)
	if err != nil {
		t.Fatalf("NextSortOrder() error = %v", err)
	}
	if next != 5 {
		t.Errorf("NextSortOrder() = %d, want 5", next)
	}
}
