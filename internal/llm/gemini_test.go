package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursepilot/internal/service"
)

// newTestClient points a GeminiClient at a stub server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key")
	c.BaseURL = srv.URL
	return c
}

// respondWithText writes a generateContent response whose first candidate
// carries the given text.
func respondWithText(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()

	resp := GenerateResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []ContentPart{{Text: text}}}, FinishReason: "STOP"},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestNewGeminiClient(t *testing.T) {
	c := NewGeminiClient("test-key")
	if c == nil {
		t.Fatal("NewGeminiClient() returned nil")
	}
	if c.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", c.APIKey, "test-key")
	}
	if c.Model == "" {
		t.Error("Model should have a default")
	}
	if c.EmbeddingModel == "" {
		t.Error("EmbeddingModel should have a default")
	}
	if c.client == nil {
		t.Error("client should not be nil")
	}
}

func TestGeminiClient_SummarizeTranscript(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("path = %q, want generateContent call", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("x-goog-api-key = %q, want %q", got, "test-key")
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected request shape: %+v", req)
		}
		prompt := req.Contents[0].Parts[0].Text
		if !strings.Contains(prompt, "Goroutines Explained") {
			t.Errorf("prompt should contain the video title, got %q", prompt)
		}
		if !strings.Contains(prompt, "goroutines are cheap") {
			t.Errorf("prompt should contain the transcript, got %q", prompt)
		}

		respondWithText(t, w, "- goroutines are cheap\n- channels synchronize")
	})

	got, err := c.SummarizeTranscript(context.Background(), "goroutines are cheap", "Goroutines Explained")
	if err != nil {
		t.Fatalf("SummarizeTranscript() error = %v", err)
	}
	if got != "- goroutines are cheap\n- channels synchronize" {
		t.Errorf("SummarizeTranscript() = %q", got)
	}
}

func TestGeminiClient_Ask(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		prompt := req.Contents[0].Parts[0].Text
		for _, want := range []string{"Distributed Systems", "Consensus", "Raft Explained", "Why an odd cluster size?"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt should contain %q", want)
			}
		}
		respondWithText(t, w, "Odd sizes avoid split votes.")
	})

	cc := service.CompanionContext{
		VideoTitle:  "Raft Explained",
		ModuleTitle: "Consensus",
		CourseName:  "Distributed Systems",
	}
	got, err := c.Ask(context.Background(), "Why an odd cluster size?", cc)
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got != "Odd sizes avoid split votes." {
		t.Errorf("Ask() = %q", got)
	}
}

func TestGeminiClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: service.ErrRateLimited,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: service.ErrExternalService,
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"candidates": []}`))
			},
			wantErr: service.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			_, err := c.SummarizeTranscript(context.Background(), "text", "title")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SummarizeTranscript() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
