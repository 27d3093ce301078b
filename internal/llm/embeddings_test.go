package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"coursepilot/internal/service"
)

func TestGeminiClient_EmbedBatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":batchEmbedContents") {
			t.Errorf("path = %q, want batchEmbedContents call", r.URL.Path)
		}

		var req batchEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Requests) != 2 {
			t.Fatalf("got %d requests, want 2", len(req.Requests))
		}
		if got := req.Requests[0].Content.Parts[0].Text; got != "Goroutines" {
			t.Errorf("first text = %q, want %q", got, "Goroutines")
		}

		resp := batchEmbedResponse{
			Embeddings: []embeddingValues{
				{Values: []float32{1, 0, 0}},
				{Values: []float32{0, 1, 0}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	got, err := c.EmbedBatch(context.Background(), []string{"Goroutines", "Channels"})
	if err != nil {
		t.Fatalf("EmbedBatch() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("EmbedBatch() returned %d embeddings, want 2", len(got))
	}
	if got[0][0] != 1 || got[1][1] != 1 {
		t.Errorf("unexpected embedding values: %v", got)
	}
}

func TestGeminiClient_EmbedBatch_EmptyInput(t *testing.T) {
	// The stub server fails the test if any request arrives.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for empty input")
	})

	got, err := c.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("EmbedBatch() error = %v", err)
	}
	if got != nil {
		t.Errorf("EmbedBatch() = %v, want nil", got)
	}
}

func TestGeminiClient_EmbedBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "count mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"embeddings": [{"values": [1, 0]}]}`))
			},
			wantErr: service.ErrExternalService,
		},
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			_, err := c.EmbedBatch(context.Background(), []string{"a", "b"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EmbedBatch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
