package service

import (
	"context"
	"encoding/json"
	"errors"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// MaxExamQuestions bounds a single generation request.
const MaxExamQuestions = 50

// ExamService owns the exam lifecycle: MCQ generation, grading, and the
// video-completion side effect on pass.
type ExamService struct {
	videos   storage.VideoStore
	exams    storage.ExamStore
	examiner ExaminerAI
}

// NewExamService creates an ExamService. examiner may be nil when the AI is
// not configured.
func NewExamService(videos storage.VideoStore, exams storage.ExamStore, examiner ExaminerAI) *ExamService {
	return &ExamService{videos: videos, exams: exams, examiner: examiner}
}

// GenerateOutput carries the new exam id and its questions.
type GenerateOutput struct {
	ExamID    domain.ExamID `json:"exam_id"`
	Questions []domain.MCQ  `json:"questions"`
}

// Generate builds an exam from the video's title and description.
func (s *ExamService) Generate(ctx context.Context, videoID string, numQuestions int) (*GenerateOutput, error) {
	if numQuestions <= 0 || numQuestions > MaxExamQuestions {
		return nil, &ValidationError{Field: "num_questions", Message: "must be between 1 and 50"}
	}
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return nil, &ValidationError{Field: "video_id", Message: err.Error()}
	}
	if s.examiner == nil {
		return nil, WrapError(ErrInvalidState, "exam generation is not configured")
	}

	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("video")
		}
		return nil, WrapError(err, "failed to load video")
	}

	questions, err := s.examiner.GenerateMCQ(ctx, video.Title, video.Description, numQuestions)
	if err != nil {
		return nil, WrapError(err, "failed to generate questions")
	}

	exam, err := domain.NewExam(domain.NewExamID(), id, questions)
	if err != nil {
		return nil, WrapError(err, "generated questions are malformed")
	}
	if err := s.exams.Save(ctx, exam); err != nil {
		return nil, WrapError(err, "failed to persist exam")
	}

	return &GenerateOutput{ExamID: exam.ID, Questions: questions}, nil
}

// SubmitOutput reports the grading outcome.
type SubmitOutput struct {
	Score               float32 `json:"score"`
	Passed              bool    `json:"passed"`
	VideoMarkedComplete bool    `json:"video_marked_complete"`
}

// Submit grades the answers against the stored questions, records the result,
// and marks the video complete on pass. Answers beyond the question count are
// ignored.
func (s *ExamService) Submit(ctx context.Context, examID string, answers []int) (*SubmitOutput, error) {
	logger := contextutil.LoggerFromContext(ctx)

	id, err := domain.ParseExamID(examID)
	if err != nil {
		return nil, &ValidationError{Field: "exam_id", Message: err.Error()}
	}

	exam, err := s.exams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("exam")
		}
		return nil, WrapError(err, "failed to load exam")
	}

	questions, err := exam.Questions()
	if err != nil {
		return nil, WrapError(err, "stored exam is malformed")
	}

	var score float32
	if len(questions) > 0 {
		correct := 0
		for i, q := range questions {
			if i >= len(answers) {
				break
			}
			if answers[i] == q.CorrectIndex {
				correct++
			}
		}
		score = float32(correct) / float32(len(questions))
	}
	passed := score >= domain.PassThreshold

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, WrapError(err, "failed to serialize answers")
	}
	if err := s.exams.UpdateResult(ctx, id, score, passed, string(answersJSON)); err != nil {
		return nil, WrapError(err, "failed to record result")
	}

	marked := false
	if passed {
		if err := s.videos.UpdateCompletion(ctx, exam.VideoID, true); err != nil {
			return nil, WrapError(err, "failed to mark video complete")
		}
		marked = true
	}

	logger.InfoContext(ctx, "exam submitted", "exam_id", id, "score", score, "passed", passed)
	return &SubmitOutput{Score: score, Passed: passed, VideoMarkedComplete: marked}, nil
}
