package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursepilot/internal/domain"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// CourseStore defines the interface for course persistence.
type CourseStore interface {
	Save(ctx context.Context, course *domain.Course) error
	FindByID(ctx context.Context, id domain.CourseID) (*domain.Course, error)
	FindAll(ctx context.Context) ([]*domain.Course, error)
	Delete(ctx context.Context, id domain.CourseID) error
}

// CourseRepo provides SQLite-backed course persistence. It implements CourseStore.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepo.
func NewCourseRepo(db *sql.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Save inserts a new course or replaces the mutable columns of an existing one.
func (r *CourseRepo) Save(ctx context.Context, course *domain.Course) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (id, name, source_url, playlist_id, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 name = excluded.name, description = excluded.description`,
		course.ID.String(), course.Name, course.SourceURL.String(), course.PlaylistID,
		nullableString(course.Description), formatTimestamp(course.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

// FindByID loads one course. Returns ErrNotFound when absent.
func (r *CourseRepo) FindByID(ctx context.Context, id domain.CourseID) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, source_url, playlist_id, description, created_at FROM courses WHERE id = ?",
		id.String(),
	)
	course, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query course: %w", err)
	}
	return course, nil
}

// FindAll returns every course ordered by creation time.
func (r *CourseRepo) FindAll(ctx context.Context) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, source_url, playlist_id, description, created_at FROM courses ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var courses []*domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// Delete removes the course; modules, videos, exams, notes, and tag links go
// with it through ON DELETE CASCADE.
func (r *CourseRepo) Delete(ctx context.Context, id domain.CourseID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var (
		id, name, sourceURL, playlistID string
		description                     sql.NullString
		createdAtStr                    string
	)
	if err := row.Scan(&id, &name, &sourceURL, &playlistID, &description, &createdAtStr); err != nil {
		return nil, err
	}

	url, err := domain.NewPlaylistURL(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("stored source_url invalid: %w", err)
	}
	createdAt, err := parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &domain.Course{
		ID:          domain.CourseID(id),
		Name:        name,
		SourceURL:   url,
		PlaylistID:  playlistID,
		Description: description.String,
		CreatedAt:   createdAt,
	}, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
