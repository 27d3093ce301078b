package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// ExamStore defines the interface for exam persistence.
type ExamStore interface {
	Save(ctx context.Context, exam *domain.Exam) error
	FindByID(ctx context.Context, id domain.ExamID) (*domain.Exam, error)
	FindByVideo(ctx context.Context, videoID domain.VideoID) ([]*domain.Exam, error)
	UpdateResult(ctx context.Context, id domain.ExamID, score float32, passed bool, userAnswersJSON string) error
}

// ExamRepo provides SQLite-backed exam persistence. It implements ExamStore.
type ExamRepo struct {
	db *sql.DB
}

// NewExamRepo creates a new ExamRepo.
func NewExamRepo(db *sql.DB) *ExamRepo {
	return &ExamRepo{db: db}
}

// Save inserts a newly generated exam. Questions are immutable, so there is no
// update path here; results go through UpdateResult.
func (r *ExamRepo) Save(ctx context.Context, exam *domain.Exam) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exams (id, video_id, question_json, score, passed, user_answers_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		exam.ID.String(), exam.VideoID.String(), exam.QuestionJSON,
		exam.Score, exam.Passed, nullableString(exam.UserAnswersJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save exam: %w", err)
	}
	return nil
}

// FindByID loads one exam. Returns ErrNotFound when absent.
func (r *ExamRepo) FindByID(ctx context.Context, id domain.ExamID) (*domain.Exam, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, video_id, question_json, score, passed, user_answers_json FROM exams WHERE id = ?",
		id.String(),
	)
	exam, err := scanExam(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query exam: %w", err)
	}
	return exam, nil
}

// FindByVideo returns all exams generated for a video, newest last.
func (r *ExamRepo) FindByVideo(ctx context.Context, videoID domain.VideoID) ([]*domain.Exam, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, video_id, question_json, score, passed, user_answers_json FROM exams WHERE video_id = ? ORDER BY rowid",
		videoID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exams: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var exams []*domain.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

// UpdateResult records the submission outcome once.
func (r *ExamRepo) UpdateResult(ctx context.Context, id domain.ExamID, score float32, passed bool, userAnswersJSON string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE exams SET score = ?, passed = ?, user_answers_json = ? WHERE id = ?",
		score, passed, userAnswersJSON, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update exam result: %w", err)
	}
	return requireAffected(res)
}

func scanExam(row rowScanner) (*domain.Exam, error) {
	var (
		id, videoID, questionJSON string
		score                     sql.NullFloat64
		passed                    sql.NullBool
		userAnswers               sql.NullString
	)
	if err := row.Scan(&id, &videoID, &questionJSON, &score, &passed, &userAnswers); err != nil {
		return nil, err
	}

	exam := &domain.Exam{
		ID:              domain.ExamID(id),
		VideoID:         domain.VideoID(videoID),
		QuestionJSON:    questionJSON,
		UserAnswersJSON: userAnswers.String,
	}
	if score.Valid {
		s := float32(score.Float64)
		exam.Score = &s
	}
	if passed.Valid {
		p := passed.Bool
		exam.Passed = &p
	}
	return exam, nil
}
