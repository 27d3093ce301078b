package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ports.go -package=mocks coursepilot/internal/service PlaylistFetcher,LocalMediaScanner,TranscriptProvider,SummarizerAI,CompanionAI,ExaminerAI,TextEmbedder,EmbeddingIndex,SecretStore,PresenceProvider

import (
	"context"

	"coursepilot/internal/domain"
)

// RawVideo is one playlist entry as delivered by the fetcher, before
// sanitization.
type RawVideo struct {
	YouTubeID    string
	Title        string
	Description  string
	DurationSecs uint32
}

// PlaylistFetcher lists the videos of a YouTube playlist.
// This interface is defined from the service layer's perspective (consumer-first).
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context, url domain.PlaylistURL) ([]RawVideo, error)
}

// ScannedMedia is one media file found under a local root.
type ScannedMedia struct {
	Path         string // absolute
	Title        string
	DurationSecs uint32
}

// LocalMediaScanner walks a directory tree for playable media files.
type LocalMediaScanner interface {
	Scan(ctx context.Context, root string) ([]ScannedMedia, error)
}

// TranscriptProvider fetches raw caption text for a YouTube video.
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID domain.YouTubeVideoID) (string, error)
}

// SummarizerAI condenses a transcript into a summary.
type SummarizerAI interface {
	SummarizeTranscript(ctx context.Context, transcript, title string) (string, error)
}

// CompanionContext carries the video's surroundings into a companion question.
type CompanionContext struct {
	VideoTitle       string
	VideoDescription string
	ModuleTitle      string
	CourseName       string
}

// CompanionAI answers a free-form question about a video.
type CompanionAI interface {
	Ask(ctx context.Context, question string, context CompanionContext) (string, error)
}

// ExaminerAI generates multiple-choice questions for a video.
type ExaminerAI interface {
	GenerateMCQ(ctx context.Context, title, description string, numQuestions int) ([]domain.MCQ, error)
}

// TextEmbedder produces one embedding per input text.
type TextEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([]domain.Embedding, error)
}

// EmbeddingHit is one neighbor from the embedding index.
type EmbeddingHit struct {
	VideoID  string
	CourseID string
	Score    float32
}

// EmbeddingIndex stores per-video title embeddings for similarity lookup.
type EmbeddingIndex interface {
	Upsert(ctx context.Context, videoID, courseID string, vec domain.Embedding) error
	Search(ctx context.Context, query domain.Embedding, k int) ([]EmbeddingHit, error)
	Delete(ctx context.Context, videoIDs []string) error
}

// SecretStore is the OS keystore seam. A missing key is (empty, false, nil),
// not an error.
type SecretStore interface {
	Store(key, secret string) error
	Retrieve(key string) (string, bool, error)
	Delete(key string) error
	Exists(key string) (bool, error)
}

// Activity is the payload shown by the presence provider.
type Activity struct {
	Details string
	State   string
}

// PresenceProvider forwards activity updates to an external presence service.
// Implementations must never block the caller.
type PresenceProvider interface {
	UpdateActivity(activity Activity)
	ClearActivity()
}
