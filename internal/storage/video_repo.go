package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// VideoStore defines the interface for video persistence.
type VideoStore interface {
	Save(ctx context.Context, video *domain.Video) error
	FindByID(ctx context.Context, id domain.VideoID) (*domain.Video, error)
	FindByModule(ctx context.Context, moduleID domain.ModuleID) ([]*domain.Video, error)
	FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Video, error)
	UpdateTranscript(ctx context.Context, id domain.VideoID, transcript string) error
	UpdateSummary(ctx context.Context, id domain.VideoID, summary string) error
	UpdateCompletion(ctx context.Context, id domain.VideoID, completed bool) error
	MoveToModule(ctx context.Context, id domain.VideoID, moduleID domain.ModuleID, sortOrder uint32) error
	NextSortOrder(ctx context.Context, moduleID domain.ModuleID) (uint32, error)
}

// VideoRepo provides SQLite-backed video persistence. It implements VideoStore.
type VideoRepo struct {
	db *sql.DB
}

// NewVideoRepo creates a new VideoRepo.
func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

const videoColumns = `id, module_id, youtube_id, title, duration_secs, is_completed,
	sort_order, description, transcript, summary, source_type, source_ref`

// Save inserts a video or updates its mutable columns.
func (r *VideoRepo) Save(ctx context.Context, video *domain.Video) error {
	var youtubeID sql.NullString
	if id, ok := video.Source.YouTubeID(); ok {
		youtubeID = sql.NullString{String: id.String(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (id, module_id, youtube_id, title, duration_secs, is_completed,
		 sort_order, description, transcript, summary, source_type, source_ref)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 module_id = excluded.module_id, title = excluded.title,
		 duration_secs = excluded.duration_secs, is_completed = excluded.is_completed,
		 sort_order = excluded.sort_order, description = excluded.description,
		 transcript = excluded.transcript, summary = excluded.summary`,
		video.ID.String(), video.ModuleID.String(), youtubeID, video.Title,
		video.DurationSecs, video.IsCompleted, video.SortOrder,
		nullableString(video.Description), nullableString(video.Transcript),
		nullableString(video.Summary), string(video.Source.Type()), video.Source.Ref(),
	)
	if err != nil {
		return fmt.Errorf("failed to save video: %w", err)
	}
	return nil
}

// FindByID loads one video. Returns ErrNotFound when absent.
func (r *VideoRepo) FindByID(ctx context.Context, id domain.VideoID) (*domain.Video, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+videoColumns+" FROM videos WHERE id = ?", id.String(),
	)
	video, err := scanVideo(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query video: %w", err)
	}
	return video, nil
}

// FindByModule returns the module's videos ordered by sort order.
func (r *VideoRepo) FindByModule(ctx context.Context, moduleID domain.ModuleID) ([]*domain.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+videoColumns+" FROM videos WHERE module_id = ? ORDER BY sort_order",
		moduleID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	return collectVideos(rows)
}

// FindByCourse returns every video in the course, ordered by module then video
// sort order.
func (r *VideoRepo) FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.module_id, v.youtube_id, v.title, v.duration_secs, v.is_completed,
		 v.sort_order, v.description, v.transcript, v.summary, v.source_type, v.source_ref
		 FROM videos v
		 JOIN modules m ON v.module_id = m.id
		 WHERE m.course_id = ?
		 ORDER BY m.sort_order, v.sort_order`,
		courseID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query course videos: %w", err)
	}
	return collectVideos(rows)
}

// UpdateTranscript stores the cleaned transcript text.
func (r *VideoRepo) UpdateTranscript(ctx context.Context, id domain.VideoID, transcript string) error {
	return r.updateColumn(ctx, id, "transcript", transcript)
}

// UpdateSummary stores the LLM summary.
func (r *VideoRepo) UpdateSummary(ctx context.Context, id domain.VideoID, summary string) error {
	return r.updateColumn(ctx, id, "summary", summary)
}

// UpdateCompletion flips the completion flag.
func (r *VideoRepo) UpdateCompletion(ctx context.Context, id domain.VideoID, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE videos SET is_completed = ? WHERE id = ?", completed, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update completion: %w", err)
	}
	return requireAffected(res)
}

// MoveToModule reparents the video and assigns its sort order in the target
// module.
func (r *VideoRepo) MoveToModule(ctx context.Context, id domain.VideoID, moduleID domain.ModuleID, sortOrder uint32) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE videos SET module_id = ?, sort_order = ? WHERE id = ?",
		moduleID.String(), sortOrder, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to move video: %w", err)
	}
	return requireAffected(res)
}

// NextSortOrder returns max(sort_order)+1 within the module, 0 when empty.
func (r *VideoRepo) NextSortOrder(ctx context.Context, moduleID domain.ModuleID) (uint32, error) {
	var next uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM videos WHERE module_id = ?",
		moduleID.String(),
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to query next sort order: %w", err)
	}
	return next, nil
}

func (r *VideoRepo) updateColumn(ctx context.Context, id domain.VideoID, column, value string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE videos SET "+column+" = ? WHERE id = ?", value, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collectVideos(rows *sql.Rows) ([]*domain.Video, error) {
	defer func() {
		_ = rows.Close()
	}()

	var videos []*domain.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

func scanVideo(row rowScanner) (*domain.Video, error) {
	var (
		id, moduleID, title, sourceType, sourceRef string
		youtubeID, description, transcript, summary sql.NullString
		durationSecs, sortOrder                    uint32
		isCompleted                                bool
	)
	err := row.Scan(&id, &moduleID, &youtubeID, &title, &durationSecs, &isCompleted,
		&sortOrder, &description, &transcript, &summary, &sourceType, &sourceRef)
	if err != nil {
		return nil, err
	}

	source, err := domain.SourceFromColumns(sourceType, sourceRef)
	if err != nil {
		return nil, err
	}

	return &domain.Video{
		ID:           domain.VideoID(id),
		ModuleID:     domain.ModuleID(moduleID),
		Source:       source,
		Title:        title,
		Description:  description.String,
		DurationSecs: durationSecs,
		IsCompleted:  isCompleted,
		SortOrder:    sortOrder,
		Transcript:   transcript.String,
		Summary:      summary.String,
	}, nil
}
