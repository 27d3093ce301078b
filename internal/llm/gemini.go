package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"coursepilot/internal/service"
)

const (
	defaultBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel          = "gemini-2.0-flash"
	defaultEmbeddingModel = "text-embedding-004"
)

// GeminiClient is a client for the Gemini REST API. It implements
// service.SummarizerAI, service.CompanionAI, service.ExaminerAI and
// service.TextEmbedder.
type GeminiClient struct {
	BaseURL        string
	APIKey         string
	Model          string
	EmbeddingModel string
	client         *http.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		BaseURL:        defaultBaseURL,
		APIKey:         apiKey,
		Model:          defaultModel,
		EmbeddingModel: defaultEmbeddingModel,
		client:         http.DefaultClient,
	}
}

// ContentPart is one text fragment of a content block.
type ContentPart struct {
	Text string `json:"text"`
}

// Content is a single turn of model input or output.
type Content struct {
	Parts []ContentPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

// GenerateRequest is the payload for models/*:generateContent.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// GenerateResponse is the response from models/*:generateContent.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text.
func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)

	payload := GenerateRequest{
		Contents: []Content{
			{Parts: []ContentPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v: %w", err, service.ErrExternalService)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("gemini rate limited: %w", service.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s: %w", resp.StatusCode, string(raw), service.ErrExternalService)
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned: %w", service.ErrExternalService)
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// SummarizeTranscript condenses a cleaned transcript into study notes.
func (c *GeminiClient) SummarizeTranscript(ctx context.Context, transcript, title string) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following video transcript into concise study notes. "+
			"Use short paragraphs and bullet points for key concepts.\n\n"+
			"Video title: %s\n\nTranscript:\n%s",
		title, transcript,
	)
	return c.generate(ctx, prompt)
}

// Ask answers a free-form question about a video, grounded on its course
// surroundings.
func (c *GeminiClient) Ask(ctx context.Context, question string, cc service.CompanionContext) (string, error) {
	prompt := fmt.Sprintf(
		"You are a study companion helping a learner work through a course.\n\n"+
			"Course: %s\nModule: %s\nVideo: %s\nVideo description: %s\n\n"+
			"Answer the learner's question clearly and concisely.\n\nQuestion: %s",
		cc.CourseName, cc.ModuleTitle, cc.VideoTitle, cc.VideoDescription, question,
	)
	return c.generate(ctx, prompt)
}
