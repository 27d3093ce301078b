// Package storage implements the SQLite persistence layer: one repository per
// aggregate plus the FTS5-backed search index.
package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Keep the pool small: a single local process shares these connections
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source_url TEXT NOT NULL,
			playlist_id TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS modules (
			id TEXT PRIMARY KEY,
			course_id TEXT NOT NULL,
			title TEXT NOT NULL,
			sort_order INTEGER NOT NULL,
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS videos (
			id TEXT PRIMARY KEY,
			module_id TEXT NOT NULL,
			youtube_id TEXT,
			title TEXT NOT NULL,
			duration_secs INTEGER NOT NULL,
			is_completed BOOLEAN NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL,
			description TEXT,
			transcript TEXT,
			summary TEXT,
			source_type TEXT NOT NULL,
			source_ref TEXT NOT NULL,
			FOREIGN KEY (module_id) REFERENCES modules(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS exams (
			id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL,
			question_json TEXT NOT NULL,
			score FLOAT,
			passed BOOLEAN,
			user_answers_json TEXT,
			FOREIGN KEY (video_id) REFERENCES videos(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (video_id) REFERENCES videos(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS course_tags (
			course_id TEXT NOT NULL,
			tag_id TEXT NOT NULL,
			PRIMARY KEY (course_id, tag_id),
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			id TEXT PRIMARY KEY,
			ml_boundary_enabled INTEGER NOT NULL,
			cognitive_limit_minutes INTEGER NOT NULL,
			right_panel_visible INTEGER NOT NULL,
			right_panel_width INTEGER NOT NULL,
			onboarding_completed INTEGER NOT NULL
		);`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS search_index USING fts5(
			entity_type, entity_id, title, content, course_id
		);`,
		`CREATE INDEX IF NOT EXISTS idx_modules_course ON modules(course_id);`,
		`CREATE INDEX IF NOT EXISTS idx_videos_module ON videos(module_id);`,
		`CREATE INDEX IF NOT EXISTS idx_exams_video ON exams(video_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

const timestampLayout = "2006-01-02 15:04:05"

// parseTimestamp accepts the two DATETIME encodings SQLite hands back.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
