package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// NoteStore defines the interface for note persistence. There is at most one
// note per video (video_id is UNIQUE).
type NoteStore interface {
	Save(ctx context.Context, note *domain.Note) error
	FindByVideo(ctx context.Context, videoID domain.VideoID) (*domain.Note, error)
	Delete(ctx context.Context, id domain.NoteID) error
}

// NoteRepo provides SQLite-backed note persistence. It implements NoteStore.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Save upserts the video's note, keyed on the unique video_id.
func (r *NoteRepo) Save(ctx context.Context, note *domain.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, video_id, content, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (video_id) DO UPDATE SET
		 content = excluded.content, updated_at = excluded.updated_at`,
		note.ID.String(), note.VideoID.String(), note.Content, formatTimestamp(note.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

// FindByVideo loads the video's note. Returns ErrNotFound when there is none.
func (r *NoteRepo) FindByVideo(ctx context.Context, videoID domain.VideoID) (*domain.Note, error) {
	var (
		id, vid, content, updatedAtStr string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, video_id, content, updated_at FROM notes WHERE video_id = ?",
		videoID.String(),
	).Scan(&id, &vid, &content, &updatedAtStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}

	updatedAt, err := parseTimestamp(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}
	return &domain.Note{
		ID:        domain.NoteID(id),
		VideoID:   domain.VideoID(vid),
		Content:   content,
		UpdatedAt: updatedAt,
	}, nil
}

// Delete removes a note by id. Deleting an absent note is a no-op.
func (r *NoteRepo) Delete(ctx context.Context, id domain.NoteID) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id.String()); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
