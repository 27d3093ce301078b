package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"coursepilot/internal/domain"
)

// SearchStore defines the interface for the full-text search index mirroring
// courses, videos, and notes.
type SearchStore interface {
	IndexCourse(ctx context.Context, id domain.CourseID, name, description string) error
	IndexVideo(ctx context.Context, id domain.VideoID, courseID domain.CourseID, title, description string) error
	IndexNote(ctx context.Context, id domain.NoteID, courseID domain.CourseID, videoTitle, content string) error
	RemoveFromIndex(ctx context.Context, entityID string) error
	Search(ctx context.Context, query string, entityType *domain.SearchEntityType, limit int) ([]domain.SearchResult, error)
}

// SearchRepo maintains the FTS5 search_index virtual table. It implements
// SearchStore. Index operations delete-then-insert, so re-indexing an entity
// is idempotent.
type SearchRepo struct {
	db *sql.DB
}

// NewSearchRepo creates a new SearchRepo.
func NewSearchRepo(db *sql.DB) *SearchRepo {
	return &SearchRepo{db: db}
}

// IndexCourse mirrors a course's name and description into the index.
func (r *SearchRepo) IndexCourse(ctx context.Context, id domain.CourseID, name, description string) error {
	return r.index(ctx, domain.SearchEntityCourse, id.String(), name, description, id.String())
}

// IndexVideo mirrors a video's title and description into the index.
func (r *SearchRepo) IndexVideo(ctx context.Context, id domain.VideoID, courseID domain.CourseID, title, description string) error {
	return r.index(ctx, domain.SearchEntityVideo, id.String(), title, description, courseID.String())
}

// IndexNote mirrors a note's content into the index, titled after its video.
func (r *SearchRepo) IndexNote(ctx context.Context, id domain.NoteID, courseID domain.CourseID, videoTitle, content string) error {
	return r.index(ctx, domain.SearchEntityNote, id.String(), videoTitle, content, courseID.String())
}

func (r *SearchRepo) index(ctx context.Context, entityType domain.SearchEntityType, entityID, title, content, courseID string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM search_index WHERE entity_id = ?", entityID,
	); err != nil {
		return fmt.Errorf("failed to clear index rows: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO search_index (entity_type, entity_id, title, content, course_id) VALUES (?, ?, ?, ?, ?)",
		string(entityType), entityID, title, content, courseID,
	); err != nil {
		return fmt.Errorf("failed to index %s: %w", entityType, err)
	}
	return nil
}

// RemoveFromIndex deletes all rows for the entity id.
func (r *SearchRepo) RemoveFromIndex(ctx context.Context, entityID string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM search_index WHERE entity_id = ?", entityID,
	); err != nil {
		return fmt.Errorf("failed to remove index rows: %w", err)
	}
	return nil
}

// Search runs a prefix-matched FTS5 query ordered by descending rank. Quotes
// are stripped from the raw user query and a trailing '*' is appended so the
// last token prefix-matches. A non-nil entityType narrows results to that kind.
func (r *SearchRepo) Search(ctx context.Context, query string, entityType *domain.SearchEntityType, limit int) ([]domain.SearchResult, error) {
	cleaned := buildMatchQuery(query)
	if cleaned == "" {
		return nil, nil
	}

	stmt := `SELECT entity_type, entity_id, title,
		 snippet(search_index, 3, '', '', '…', 12), course_id
		 FROM search_index
		 WHERE search_index MATCH ?`
	args := []any{cleaned}
	if entityType != nil {
		stmt += " AND entity_type = ?"
		args = append(args, string(*entityType))
	}
	stmt += " ORDER BY rank LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		// Gracefully handle queries FTS5 cannot parse
		if strings.Contains(err.Error(), "fts5: syntax error") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var results []domain.SearchResult
	for rows.Next() {
		var (
			entityType, entityID, title, snippet, courseID string
		)
		if err := rows.Scan(&entityType, &entityID, &title, &snippet, &courseID); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		parsedType, err := domain.ParseSearchEntityType(entityType)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.SearchResult{
			EntityType: parsedType,
			EntityID:   entityID,
			Title:      title,
			Snippet:    snippet,
			CourseID:   courseID,
		})
	}
	return results, rows.Err()
}

// buildMatchQuery strips quote characters and appends '*' for prefix matching.
func buildMatchQuery(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '"' || r == '\'' {
			return -1
		}
		return r
	}, query)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}
	return cleaned + "*"
}
