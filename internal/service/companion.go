package service

import (
	"context"
	"errors"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// CompanionService answers questions about a video using its course context.
type CompanionService struct {
	videos  storage.VideoStore
	modules storage.ModuleStore
	courses storage.CourseStore
	ai      CompanionAI
}

// NewCompanionService creates a CompanionService. ai may be nil when the AI is
// not configured.
func NewCompanionService(videos storage.VideoStore, modules storage.ModuleStore, courses storage.CourseStore, ai CompanionAI) *CompanionService {
	return &CompanionService{videos: videos, modules: modules, courses: courses, ai: ai}
}

// Ask resolves video → module → course to build the companion context and
// forwards the question.
func (s *CompanionService) Ask(ctx context.Context, videoID, question string) (string, error) {
	if question == "" {
		return "", &ValidationError{Field: "question", Message: "cannot be empty"}
	}
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return "", &ValidationError{Field: "video_id", Message: err.Error()}
	}
	if s.ai == nil {
		return "", WrapError(ErrInvalidState, "companion is not configured")
	}

	video, module, course, err := s.resolveContext(ctx, id)
	if err != nil {
		return "", err
	}

	answer, err := s.ai.Ask(ctx, question, CompanionContext{
		VideoTitle:       video.Title,
		VideoDescription: video.Description,
		ModuleTitle:      module.Title,
		CourseName:       course.Name,
	})
	if err != nil {
		return "", WrapError(err, "companion failed")
	}
	return answer, nil
}

func (s *CompanionService) resolveContext(ctx context.Context, id domain.VideoID) (*domain.Video, *domain.Module, *domain.Course, error) {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, notFound("video")
		}
		return nil, nil, nil, WrapError(err, "failed to load video")
	}
	module, err := s.modules.FindByID(ctx, video.ModuleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, notFound("module")
		}
		return nil, nil, nil, WrapError(err, "failed to load module")
	}
	course, err := s.courses.FindByID(ctx, module.CourseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, notFound("course")
		}
		return nil, nil, nil, WrapError(err, "failed to load course")
	}
	return video, module, course, nil
}
