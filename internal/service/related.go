package service

import (
	"context"
	"errors"
	"fmt"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// DefaultRelatedLimit is the neighbor count when the caller does not set one.
const DefaultRelatedLimit = 5

// RelatedService finds videos with similar titles via the embedding index.
// Both embedder and index are nilable; when either is missing the feature is
// disabled and lookups fail with ErrInvalidState.
type RelatedService struct {
	videos   storage.VideoStore
	embedder TextEmbedder
	index    EmbeddingIndex
}

// NewRelatedService creates a RelatedService. embedder and index may be nil.
func NewRelatedService(videos storage.VideoStore, embedder TextEmbedder, index EmbeddingIndex) *RelatedService {
	return &RelatedService{videos: videos, embedder: embedder, index: index}
}

// RelatedVideo is one similarity hit resolved back to its stored video.
type RelatedVideo struct {
	VideoID  domain.VideoID  `json:"video_id"`
	CourseID domain.CourseID `json:"course_id"`
	Title    string          `json:"title"`
	Score    float32         `json:"score"`
}

// FindRelatedVideos embeds the video's title and returns its nearest
// neighbors, excluding the video itself. Hits whose videos have since been
// deleted are dropped silently.
func (s *RelatedService) FindRelatedVideos(ctx context.Context, videoID domain.VideoID, limit int) ([]RelatedVideo, error) {
	if s.embedder == nil || s.index == nil {
		return nil, fmt.Errorf("%w: embeddings are not configured", ErrInvalidState)
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("video")
		}
		return nil, WrapError(err, "failed to load video")
	}

	vecs, err := s.embedder.EmbedBatch(ctx, []string{video.Title})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to embed title: %v", ErrExternalService, err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("%w: embedder returned %d vectors for one input", ErrExternalService, len(vecs))
	}

	// Over-fetch by one so the video itself can be excluded.
	hits, err := s.index.Search(ctx, vecs[0], limit+1)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding search failed: %v", ErrExternalService, err)
	}

	related := make([]RelatedVideo, 0, limit)
	for _, hit := range hits {
		if hit.VideoID == videoID.String() {
			continue
		}
		neighbor, err := s.videos.FindByID(ctx, domain.VideoID(hit.VideoID))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, WrapError(err, "failed to load related video")
		}
		related = append(related, RelatedVideo{
			VideoID:  neighbor.ID,
			CourseID: domain.CourseID(hit.CourseID),
			Title:    neighbor.Title,
			Score:    hit.Score,
		})
		if len(related) == limit {
			break
		}
	}
	return related, nil
}
