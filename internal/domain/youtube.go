package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// YouTubeVideoID is a validated YouTube video identifier: 10-12 characters from
// [A-Za-z0-9_-].
type YouTubeVideoID string

// NewYouTubeVideoID validates and wraps a raw YouTube video id.
func NewYouTubeVideoID(raw string) (YouTubeVideoID, error) {
	if len(raw) < 10 || len(raw) > 12 {
		return "", fmt.Errorf("youtube video id %q must be 10-12 characters", raw)
	}
	for _, r := range raw {
		if !isYouTubeIDRune(r) {
			return "", fmt.Errorf("youtube video id %q contains invalid character %q", raw, r)
		}
	}
	return YouTubeVideoID(raw), nil
}

func isYouTubeIDRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		r == '_' || r == '-'
}

func (id YouTubeVideoID) String() string { return string(id) }

// PlaylistURL is a validated YouTube playlist URL. Validation extracts the `list`
// query parameter; a URL without one is rejected.
type PlaylistURL struct {
	raw        string
	playlistID string
}

// NewPlaylistURL parses and validates a playlist URL.
func NewPlaylistURL(raw string) (PlaylistURL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PlaylistURL{}, fmt.Errorf("playlist URL is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return PlaylistURL{}, fmt.Errorf("invalid playlist URL %q: %w", raw, err)
	}
	listID := u.Query().Get("list")
	if listID == "" {
		return PlaylistURL{}, fmt.Errorf("playlist URL %q has no list parameter", raw)
	}
	return PlaylistURL{raw: trimmed, playlistID: listID}, nil
}

// String returns the original URL.
func (p PlaylistURL) String() string { return p.raw }

// PlaylistID returns the extracted playlist identifier.
func (p PlaylistURL) PlaylistID() string { return p.playlistID }
