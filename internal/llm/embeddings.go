package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// embedContentRequest is one entry of a batchEmbedContents call.
type embedContentRequest struct {
	Model   string  `json:"model"`
	Content Content `json:"content"`
}

type batchEmbedRequest struct {
	Requests []embedContentRequest `json:"requests"`
}

type embeddingValues struct {
	Values []float32 `json:"values"`
}

type batchEmbedResponse struct {
	Embeddings []embeddingValues `json:"embeddings"`
}

// EmbedBatch produces one embedding per input text via batchEmbedContents.
func (c *GeminiClient) EmbedBatch(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/models/%s:batchEmbedContents", c.BaseURL, c.EmbeddingModel)

	payload := batchEmbedRequest{Requests: make([]embedContentRequest, len(texts))}
	for i, text := range texts {
		payload.Requests[i] = embedContentRequest{
			Model:   "models/" + c.EmbeddingModel,
			Content: Content{Parts: []ContentPart{{Text: text}}},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v: %w", err, service.ErrExternalService)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("gemini rate limited: %w", service.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s: %w", resp.StatusCode, string(raw), service.ErrExternalService)
	}

	var embedResp batchEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(embedResp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d: %w",
			len(texts), len(embedResp.Embeddings), service.ErrExternalService)
	}

	embeddings := make([]domain.Embedding, len(embedResp.Embeddings))
	for i, e := range embedResp.Embeddings {
		embeddings[i] = domain.Embedding(e.Values)
	}
	return embeddings, nil
}
