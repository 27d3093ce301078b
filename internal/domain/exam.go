package domain

import (
	"encoding/json"
	"fmt"
)

// PassThreshold is the fraction of correct answers required to pass an exam.
const PassThreshold = 0.70

// MCQ is a single multiple-choice question.
type MCQ struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Validate checks the structural invariant: the correct index must address one
// of the options.
func (q MCQ) Validate() error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %q has no options", q.Question)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q correct index %d out of range", q.Question, q.CorrectIndex)
	}
	return nil
}

// Exam is an AI-generated MCQ quiz attached to one video. Questions are
// immutable once generated; the result is recorded once per submission.
type Exam struct {
	ID              ExamID
	VideoID         VideoID
	QuestionJSON    string
	Score           *float32 // in [0,1]; nil until submitted
	Passed          *bool    // nil until submitted
	UserAnswersJSON string   // empty until submitted
}

// NewExam builds an exam with serialized questions and no result.
func NewExam(id ExamID, videoID VideoID, questions []MCQ) (*Exam, error) {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("serialize questions: %w", err)
	}
	return &Exam{ID: id, VideoID: videoID, QuestionJSON: string(raw)}, nil
}

// Questions deserializes the stored question list.
func (e *Exam) Questions() ([]MCQ, error) {
	var qs []MCQ
	if err := json.Unmarshal([]byte(e.QuestionJSON), &qs); err != nil {
		return nil, fmt.Errorf("parse exam questions: %w", err)
	}
	return qs, nil
}

// RecordResult stores the score and derives the pass flag from the 0.70
// threshold.
func (e *Exam) RecordResult(score float32, userAnswersJSON string) {
	passed := score >= PassThreshold
	e.Score = &score
	e.Passed = &passed
	e.UserAnswersJSON = userAnswersJSON
}
