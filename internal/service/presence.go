package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// PresenceService publishes "now studying" activity. The provider is nilable;
// when presence is disabled every call is a no-op.
type PresenceService struct {
	provider PresenceProvider
	videos   storage.VideoStore
	modules  storage.ModuleStore
	courses  storage.CourseStore
}

// NewPresenceService creates a PresenceService. provider may be nil.
func NewPresenceService(provider PresenceProvider, videos storage.VideoStore, modules storage.ModuleStore, courses storage.CourseStore) *PresenceService {
	return &PresenceService{provider: provider, videos: videos, modules: modules, courses: courses}
}

// UpdatePresence announces the video the user is watching. Presence is best
// effort: a disabled provider returns nil, and lookup failures surface so the
// caller can log them, but the provider itself never blocks.
func (s *PresenceService) UpdatePresence(ctx context.Context, videoID domain.VideoID) error {
	if s.provider == nil {
		return nil
	}

	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("video")
		}
		return WrapError(err, "failed to load video")
	}
	module, err := s.modules.FindByID(ctx, video.ModuleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("module")
		}
		return WrapError(err, "failed to load module")
	}
	course, err := s.courses.FindByID(ctx, module.CourseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("course")
		}
		return WrapError(err, "failed to load course")
	}

	logger := contextutil.LoggerFromContext(ctx)
	logger.Debug("updating presence", "video_id", videoID.String(), "course", course.Name)

	s.provider.UpdateActivity(Activity{
		Details: fmt.Sprintf("Studying %s", truncateActivity(course.Name, 100)),
		State:   truncateActivity(video.Title, 100),
	})
	return nil
}

// ClearPresence removes the published activity.
func (s *PresenceService) ClearPresence(ctx context.Context) {
	if s.provider == nil {
		return
	}
	contextutil.LoggerFromContext(ctx).Debug("clearing presence")
	s.provider.ClearActivity()
}

func truncateActivity(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
