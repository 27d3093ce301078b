package service

import (
	"context"
	"errors"
	"strings"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/nlp"
	"coursepilot/internal/storage"
)

// TranscriptService owns the transcript-and-summary cache per video: at most
// one stored transcript and one stored summary, both refreshed on demand.
type TranscriptService struct {
	videos     storage.VideoStore
	provider   TranscriptProvider
	summarizer SummarizerAI
}

// NewTranscriptService creates a TranscriptService. provider and summarizer
// may be nil when the corresponding external services are not configured.
func NewTranscriptService(videos storage.VideoStore, provider TranscriptProvider, summarizer SummarizerAI) *TranscriptService {
	return &TranscriptService{videos: videos, provider: provider, summarizer: summarizer}
}

// AttachTranscript cleans raw subtitle text and stores it on the video. An
// input that cleans down to nothing is rejected.
func (s *TranscriptService) AttachTranscript(ctx context.Context, videoID string, rawText string) error {
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return &ValidationError{Field: "video_id", Message: err.Error()}
	}

	cleaned := nlp.CleanSubtitles(rawText)
	if strings.TrimSpace(cleaned) == "" {
		return WrapError(ErrInvalidState, "transcript is empty after cleaning")
	}

	if err := s.videos.UpdateTranscript(ctx, id, cleaned); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("video")
		}
		return WrapError(err, "failed to store transcript")
	}
	return nil
}

// SummarizeOutput carries the summary, the transcript it was computed from,
// and whether it was served from cache.
type SummarizeOutput struct {
	Summary        string `json:"summary"`
	TranscriptUsed string `json:"transcript_used"`
	Cached         bool   `json:"cached"`
}

// SummarizeVideo returns the cached summary unless forceRefresh is set, in
// which case both transcript and summary are recomputed. Two concurrent
// force-refreshes are last-writer-wins; the final state is the same either way.
func (s *TranscriptService) SummarizeVideo(ctx context.Context, videoID string, forceRefresh bool) (*SummarizeOutput, error) {
	logger := contextutil.LoggerFromContext(ctx)

	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return nil, &ValidationError{Field: "video_id", Message: err.Error()}
	}

	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("video")
		}
		return nil, WrapError(err, "failed to load video")
	}

	if !forceRefresh && video.Summary != "" {
		return &SummarizeOutput{
			Summary:        video.Summary,
			TranscriptUsed: video.Transcript,
			Cached:         true,
		}, nil
	}

	transcript := video.Transcript
	if forceRefresh || transcript == "" {
		if s.provider == nil {
			return nil, WrapError(ErrInvalidState, "transcript fetching is not configured")
		}
		ytID, ok := video.Source.YouTubeID()
		if !ok {
			return nil, WrapError(ErrInvalidState, "video has no YouTube source to fetch a transcript from")
		}
		fetched, err := s.provider.FetchTranscript(ctx, ytID)
		if err != nil {
			return nil, WrapError(err, "failed to fetch transcript")
		}
		transcript = nlp.CleanSubtitles(fetched)
		if strings.TrimSpace(transcript) == "" {
			return nil, WrapError(ErrInvalidState, "fetched transcript is empty after cleaning")
		}
		if err := s.videos.UpdateTranscript(ctx, id, transcript); err != nil {
			return nil, WrapError(err, "failed to store transcript")
		}
	}

	if s.summarizer == nil {
		return nil, WrapError(ErrInvalidState, "summarization is not configured")
	}
	summary, err := s.summarizer.SummarizeTranscript(ctx, transcript, video.Title)
	if err != nil {
		return nil, WrapError(err, "failed to summarize transcript")
	}
	if err := s.videos.UpdateSummary(ctx, id, summary); err != nil {
		return nil, WrapError(err, "failed to store summary")
	}

	logger.InfoContext(ctx, "video summarized", "video_id", id, "transcript_len", len(transcript))
	return &SummarizeOutput{Summary: summary, TranscriptUsed: transcript, Cached: false}, nil
}
