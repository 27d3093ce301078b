package service_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

func init() {
	// Keep test output readable
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}
	return db
}

func seedCourse(t *testing.T, db *sql.DB, name string) *domain.Course {
	t.Helper()

	url, err := domain.NewPlaylistURL("https://www.youtube.com/playlist?list=PLseed")
	if err != nil {
		t.Fatalf("NewPlaylistURL() error = %v", err)
	}
	course := domain.NewCourse(domain.NewCourseID(), name, url, url.PlaylistID(), "")
	if err := storage.NewCourseRepo(db).Save(context.Background(), course); err != nil {
		t.Fatalf("CourseRepo.Save() error = %v", err)
	}
	return course
}

func seedModule(t *testing.T, db *sql.DB, courseID domain.CourseID, title string, sortOrder uint32) *domain.Module {
	t.Helper()

	module := domain.NewModule(domain.NewModuleID(), courseID, title, sortOrder)
	if err := storage.NewModuleRepo(db).Save(context.Background(), module); err != nil {
		t.Fatalf("ModuleRepo.Save() error = %v", err)
	}
	return module
}

func seedVideo(t *testing.T, db *sql.DB, moduleID domain.ModuleID, title string, durationSecs, sortOrder uint32) *domain.Video {
	t.Helper()

	ytID, err := domain.NewYouTubeVideoID("dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("NewYouTubeVideoID() error = %v", err)
	}
	video := domain.NewVideo(domain.NewVideoID(), moduleID, domain.YouTubeSource(ytID), title, durationSecs, sortOrder)
	if err := storage.NewVideoRepo(db).Save(context.Background(), video); err != nil {
		t.Fatalf("VideoRepo.Save() error = %v", err)
	}
	return video
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("count query %q error = %v", query, err)
	}
	return count
}
