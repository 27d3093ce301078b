package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursepilot/internal/service"
)

// ExamHandler handles HTTP requests for exam generation and grading.
type ExamHandler struct {
	exams *service.ExamService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(exams *service.ExamService) *ExamHandler {
	return &ExamHandler{exams: exams}
}

// GenerateExamRequest selects how many questions to generate.
type GenerateExamRequest struct {
	NumQuestions int `json:"num_questions"`
}

// Generate builds a new exam for a video.
func (h *ExamHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateExamRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.exams.Generate(r.Context(), chi.URLParam(r, "videoID"), req.NumQuestions)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to generate exam")
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// SubmitExamRequest carries the chosen option index per question.
type SubmitExamRequest struct {
	Answers []int `json:"answers"`
}

// Submit grades the submitted answers.
func (h *ExamHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitExamRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.exams.Submit(r.Context(), chi.URLParam(r, "examID"), req.Answers)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to grade exam")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
