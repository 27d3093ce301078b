package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"coursepilot/internal/service"
)

const validMCQJSON = `[
  {"question": "What does a mutex guard?", "options": ["Shared state", "Stack frames", "Goroutine IDs", "Channels"], "correct_index": 0, "explanation": "Mutexes serialize access to shared state."},
  {"question": "Which primitive blocks until a value arrives?", "options": ["select default", "Unbuffered channel receive", "atomic.Load", "sync.Once"], "correct_index": 1, "explanation": "Unbuffered receives wait for a sender."}
]`

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare json untouched",
			input: `[{"a": 1}]`,
			want:  `[{"a": 1}]`,
		},
		{
			name:  "json fence",
			input: "```json\n[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "plain fence",
			input: "```\n[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n[1]\n```\n  ",
			want:  "[1]",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGeminiClient_GenerateMCQ(t *testing.T) {
	tests := []struct {
		name      string
		modelText string
		wantCount int
		wantErr   error
	}{
		{
			name:      "valid questions",
			modelText: validMCQJSON,
			wantCount: 2,
		},
		{
			name:      "fenced questions",
			modelText: "```json\n" + validMCQJSON + "\n```",
			wantCount: 2,
		},
		{
			name:      "malformed json",
			modelText: "here are your questions: ...",
			wantErr:   service.ErrExternalService,
		},
		{
			name:      "empty array",
			modelText: "[]",
			wantErr:   service.ErrExternalService,
		},
		{
			name:      "correct index out of range",
			modelText: `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correct_index": 5, "explanation": "e"}]`,
			wantErr:   service.ErrExternalService,
		},
		{
			name:      "no options",
			modelText: `[{"question": "Q?", "options": [], "correct_index": 0, "explanation": "e"}]`,
			wantErr:   service.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var req GenerateRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				respondWithText(t, w, tt.modelText)
			})

			got, err := c.GenerateMCQ(context.Background(), "Sync Primitives", "mutexes and channels", 2)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GenerateMCQ() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateMCQ() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("GenerateMCQ() returned %d questions, want %d", len(got), tt.wantCount)
			}
			if got[0].Question != "What does a mutex guard?" {
				t.Errorf("question = %q", got[0].Question)
			}
			if got[0].CorrectIndex != 0 || got[1].CorrectIndex != 1 {
				t.Errorf("correct indices = %d, %d", got[0].CorrectIndex, got[1].CorrectIndex)
			}
		})
	}
}
