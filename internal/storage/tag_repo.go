package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// TagStore defines the interface for tag persistence and course-tag links.
type TagStore interface {
	Save(ctx context.Context, tag *domain.Tag) error
	FindAll(ctx context.Context) ([]*domain.Tag, error)
	FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Tag, error)
	LinkCourse(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error
	UnlinkCourse(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error
	Delete(ctx context.Context, id domain.TagID) error
}

// TagRepo provides SQLite-backed tag persistence. It implements TagStore.
type TagRepo struct {
	db *sql.DB
}

// NewTagRepo creates a new TagRepo.
func NewTagRepo(db *sql.DB) *TagRepo {
	return &TagRepo{db: db}
}

// Save inserts a tag or updates its name and color.
func (r *TagRepo) Save(ctx context.Context, tag *domain.Tag) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (id, name, color) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, color = excluded.color`,
		tag.ID.String(), tag.Name, tag.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}

// FindAll returns every tag ordered by name.
func (r *TagRepo) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, color FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	return collectTags(rows)
}

// FindByCourse returns the tags linked to a course.
func (r *TagRepo) FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.name, t.color FROM tags t
		 JOIN course_tags ct ON ct.tag_id = t.id
		 WHERE ct.course_id = ?
		 ORDER BY t.name`,
		courseID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query course tags: %w", err)
	}
	return collectTags(rows)
}

// LinkCourse attaches a tag to a course; linking twice is a no-op.
func (r *TagRepo) LinkCourse(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO course_tags (course_id, tag_id) VALUES (?, ?)",
		courseID.String(), tagID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to link tag: %w", err)
	}
	return nil
}

// UnlinkCourse detaches a tag from a course.
func (r *TagRepo) UnlinkCourse(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM course_tags WHERE course_id = ? AND tag_id = ?",
		courseID.String(), tagID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to unlink tag: %w", err)
	}
	return nil
}

// Delete removes a tag; course links go with it through ON DELETE CASCADE.
func (r *TagRepo) Delete(ctx context.Context, id domain.TagID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return requireAffected(res)
}

func collectTags(rows *sql.Rows) ([]*domain.Tag, error) {
	defer func() {
		_ = rows.Close()
	}()

	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		var id string
		if err := rows.Scan(&id, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		t.ID = domain.TagID(id)
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
