package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

const timedtextBaseURL = "https://www.youtube.com/api/timedtext"

// TranscriptClient fetches captions from YouTube's timedtext endpoint. It
// implements service.TranscriptProvider. The returned text is raw VTT; the
// subtitle cleaner strips timing and cue metadata downstream.
type TranscriptClient struct {
	client  *http.Client
	baseURL string
	cookies string // raw Cookie header value, empty when not configured
	lang    string
}

// NewTranscriptClient creates a TranscriptClient. cookies may be empty; some
// videos only serve captions to a logged-in session.
func NewTranscriptClient(cookies string) *TranscriptClient {
	return &TranscriptClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: timedtextBaseURL,
		cookies: cookies,
		lang:    "en",
	}
}

// FetchTranscript downloads the video's captions in VTT form.
func (tc *TranscriptClient) FetchTranscript(ctx context.Context, videoID domain.YouTubeVideoID) (string, error) {
	params := url.Values{}
	params.Set("v", videoID.String())
	params.Set("lang", tc.lang)
	params.Set("fmt", "vtt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	if tc.cookies != "" {
		req.Header.Set("Cookie", tc.cookies)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("timedtext request failed: %v: %w", err, service.ErrExternalService)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("no captions for video %s: %w", videoID, service.ErrNotFound)
	case http.StatusForbidden:
		return "", fmt.Errorf("captions for video %s are restricted: %w", videoID, service.ErrExternalService)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("rate limited by youtube: %w", service.ErrRateLimited)
	default:
		return "", fmt.Errorf("timedtext returned status %d: %w", resp.StatusCode, service.ErrExternalService)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read timedtext response: %w", err)
	}
	if len(body) == 0 {
		// The endpoint answers 200 with an empty body when no track exists
		return "", fmt.Errorf("no captions for video %s: %w", videoID, service.ErrNotFound)
	}
	return string(body), nil
}
