package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// mcqPayload is the shape the model is asked to produce, one object per
// question.
type mcqPayload struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// GenerateMCQ asks the model for multiple-choice questions about a video and
// parses the JSON it returns. Questions that fail domain validation are
// rejected rather than repaired.
func (c *GeminiClient) GenerateMCQ(ctx context.Context, title, description string, numQuestions int) ([]domain.MCQ, error) {
	prompt := fmt.Sprintf(
		"Generate exactly %d multiple-choice questions testing understanding of a video.\n\n"+
			"Video title: %s\nVideo description: %s\n\n"+
			"Respond with ONLY a JSON array, no prose and no code fences. Each element:\n"+
			`{"question": "...", "options": ["...", "...", "...", "..."], "correct_index": 0, "explanation": "..."}`+"\n\n"+
			"Each question has exactly 4 options and correct_index in [0,3].",
		numQuestions, title, description,
	)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payloads []mcqPayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payloads); err != nil {
		return nil, fmt.Errorf("model returned malformed questions: %v: %w", err, service.ErrExternalService)
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("model returned no questions: %w", service.ErrExternalService)
	}

	questions := make([]domain.MCQ, 0, len(payloads))
	for i, p := range payloads {
		q := domain.MCQ{
			Question:     strings.TrimSpace(p.Question),
			Options:      p.Options,
			CorrectIndex: p.CorrectIndex,
			Explanation:  strings.TrimSpace(p.Explanation),
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("model question %d invalid: %v: %w", i, err, service.ErrExternalService)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// stripCodeFences tolerates models that wrap JSON in ``` blocks despite the
// prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
