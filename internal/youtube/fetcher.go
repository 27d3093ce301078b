package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const pageSize = 50

// APIFetcher lists playlist videos via YouTube Data API v3. It implements
// service.PlaylistFetcher.
type APIFetcher struct {
	svc *yt.Service
}

// NewAPIFetcher creates an APIFetcher authenticated with an API key.
func NewAPIFetcher(ctx context.Context, apiKey string) (*APIFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &APIFetcher{svc: svc}, nil
}

type playlistItem struct {
	videoID     string
	title       string
	description string
}

// FetchPlaylist pages through playlistItems.list for the playlist, then
// resolves durations with videos.list. Items whose videos are private or
// deleted come back without contentDetails in videos.list and are skipped.
func (f *APIFetcher) FetchPlaylist(ctx context.Context, url domain.PlaylistURL) ([]service.RawVideo, error) {
	var items []playlistItem
	pageToken := ""
	for {
		call := f.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(url.PlaylistID()).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			return nil, classifyAPIError(err)
		}

		for _, pi := range resp.Items {
			it := playlistItem{videoID: pi.ContentDetails.VideoId}
			if pi.Snippet != nil {
				it.title = pi.Snippet.Title
				it.description = pi.Snippet.Description
			}
			items = append(items, it)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("playlist %s has no items: %w", url.PlaylistID(), service.ErrNotFound)
	}

	durations, err := f.fetchDurations(ctx, items)
	if err != nil {
		return nil, err
	}

	videos := make([]service.RawVideo, 0, len(items))
	for _, it := range items {
		secs, ok := durations[it.videoID]
		if !ok {
			continue
		}
		videos = append(videos, service.RawVideo{
			YouTubeID:    it.videoID,
			Title:        it.title,
			Description:  it.description,
			DurationSecs: secs,
		})
	}
	return videos, nil
}

func (f *APIFetcher) fetchDurations(ctx context.Context, items []playlistItem) (map[string]uint32, error) {
	durations := make(map[string]uint32, len(items))
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		ids := make([]string, 0, end-start)
		for _, it := range items[start:end] {
			ids = append(ids, it.videoID)
		}

		resp, err := f.svc.Videos.List([]string{"contentDetails"}).
			Id(ids...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, classifyAPIError(err)
		}
		for _, v := range resp.Items {
			if v.ContentDetails == nil {
				continue
			}
			secs, err := parseISODuration(v.ContentDetails.Duration)
			if err != nil {
				continue
			}
			durations[v.Id] = secs
		}
	}
	return durations, nil
}

// classifyAPIError maps Data API failures onto the service error taxonomy.
func classifyAPIError(err error) error {
	if gErr, ok := err.(*googleapi.Error); ok {
		switch {
		case gErr.Code == 404:
			return fmt.Errorf("playlist not found: %w", service.ErrNotFound)
		case gErr.Code == 429,
			strings.Contains(gErr.Error(), "quotaExceeded"),
			strings.Contains(gErr.Error(), "rateLimitExceeded"):
			return fmt.Errorf("youtube api quota exceeded: %w", service.ErrRateLimited)
		}
	}
	return fmt.Errorf("youtube api request failed: %v: %w", err, service.ErrExternalService)
}

// parseISODuration converts an ISO 8601 duration like "PT1H2M30S" to seconds.
func parseISODuration(iso string) (uint32, error) {
	s := strings.TrimPrefix(iso, "P")
	if s == iso {
		return 0, fmt.Errorf("invalid duration %q", iso)
	}

	var days, hours, minutes, seconds uint64
	inTime := false
	num := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q", iso)
			}
			n, err := strconv.ParseUint(num, 10, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", iso, err)
			}
			num = ""
			switch {
			case r == 'D':
				days = n
			case r == 'H' && inTime:
				hours = n
			case r == 'M' && inTime:
				minutes = n
			case r == 'S' && inTime:
				seconds = n
			default:
				return 0, fmt.Errorf("invalid duration %q: unexpected %q", iso, r)
			}
		}
	}

	total := days*86400 + hours*3600 + minutes*60 + seconds
	if total > 1<<32-1 {
		return 0, fmt.Errorf("duration %q overflows", iso)
	}
	return uint32(total), nil
}
