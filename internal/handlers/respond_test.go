package handlers

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

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error carries its message",
			err:        &service.ValidationError{Field: "name", Message: "must not be empty"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "must not be empty",
		},
		{
			name:       "invalid input",
			err:        service.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid input",
		},
		{
			name:       "not found",
			err:        service.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found",
		},
		{
			name:       "rate limited",
			err:        service.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Rate limited",
		},
		{
			name:       "invalid state",
			err:        service.ErrInvalidState,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "external service",
			err:        service.ErrExternalService,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "External service error",
		},
		{
			name:       "wrapped errors unwrap",
			err:        errors.Join(errors.New("context"), service.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error uses default message",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handleServiceError(w, context.Background(), tt.err, "Operation failed")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Content-Type"); got != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", got)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if tt.wantMsg != "" && !strings.Contains(resp.Error, tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tt.wantMsg)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Go Concurrency"}`))
		w := httptest.NewRecorder()

		var p payload
		if !decodeBody(w, req, &p) {
			t.Fatalf("decodeBody() = false, body: %s", w.Body.String())
		}
		if p.Name != "Go Concurrency" {
			t.Errorf("name = %q, want %q", p.Name, "Go Concurrency")
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": `))
		w := httptest.NewRecorder()

		var p payload
		if decodeBody(w, req, &p) {
			t.Fatal("decodeBody() = true, want false")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
