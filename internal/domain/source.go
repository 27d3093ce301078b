package domain

import (
	"fmt"
	"path/filepath"
)

// SourceType discriminates where a video's bytes come from.
type SourceType string

const (
	SourceYouTube SourceType = "youtube"
	SourceLocal   SourceType = "local"
)

// VideoSource is a tagged variant: either a YouTube video id or an absolute local
// file path. The persisted form is the (source_type, source_ref) column pair.
type VideoSource struct {
	kind SourceType
	ref  string
}

// YouTubeSource builds a source for a validated YouTube video id.
func YouTubeSource(id YouTubeVideoID) VideoSource {
	return VideoSource{kind: SourceYouTube, ref: string(id)}
}

// LocalSource builds a source for an absolute local file path.
func LocalSource(absPath string) (VideoSource, error) {
	if absPath == "" {
		return VideoSource{}, fmt.Errorf("local source path is empty")
	}
	if !filepath.IsAbs(absPath) {
		return VideoSource{}, fmt.Errorf("local source path %q is not absolute", absPath)
	}
	return VideoSource{kind: SourceLocal, ref: absPath}, nil
}

// SourceFromColumns reconstructs a VideoSource from its persisted discriminant and
// reference columns, re-running validation.
func SourceFromColumns(sourceType, sourceRef string) (VideoSource, error) {
	switch SourceType(sourceType) {
	case SourceYouTube:
		id, err := NewYouTubeVideoID(sourceRef)
		if err != nil {
			return VideoSource{}, err
		}
		return YouTubeSource(id), nil
	case SourceLocal:
		return LocalSource(sourceRef)
	default:
		return VideoSource{}, fmt.Errorf("invalid source type %q", sourceType)
	}
}

// Type returns the discriminant.
func (s VideoSource) Type() SourceType { return s.kind }

// Ref returns the reference column value: the YouTube id or the absolute path.
func (s VideoSource) Ref() string { return s.ref }

// YouTubeID returns the video id when the source is YouTube.
func (s VideoSource) YouTubeID() (YouTubeVideoID, bool) {
	if s.kind != SourceYouTube {
		return "", false
	}
	return YouTubeVideoID(s.ref), true
}

// LocalPath returns the absolute path when the source is local.
func (s VideoSource) LocalPath() (string, bool) {
	if s.kind != SourceLocal {
		return "", false
	}
	return s.ref, true
}
