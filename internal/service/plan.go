package service

import (
	"context"
	"errors"

	"coursepilot/internal/domain"
	"coursepilot/internal/planner"
	"coursepilot/internal/storage"
)

// PlanService assembles paced study sessions for a course.
type PlanService struct {
	courses storage.CourseStore
	videos  storage.VideoStore
	prefs   storage.PreferencesStore
}

// NewPlanService creates a PlanService.
func NewPlanService(courses storage.CourseStore, videos storage.VideoStore, prefs storage.PreferencesStore) *PlanService {
	return &PlanService{courses: courses, videos: videos, prefs: prefs}
}

// PlanSessionInput selects the course and optionally overrides the stored
// cognitive limit; 0 means "use preferences".
type PlanSessionInput struct {
	CourseID              string
	CognitiveLimitMinutes uint32
}

// PlanSessionOutput is the ordered day plan plus the derived day count.
type PlanSessionOutput struct {
	Sessions      []domain.SessionPlan `json:"sessions"`
	EstimatedDays int                  `json:"estimated_days"`
}

// PlanSession loads the course's videos in module order and packs them into
// daily sessions bounded by the cognitive limit. Module starts are passed to
// the planner as boundaries so a fresh module prefers a fresh day.
func (s *PlanService) PlanSession(ctx context.Context, input PlanSessionInput) (*PlanSessionOutput, error) {
	courseID, err := domain.ParseCourseID(input.CourseID)
	if err != nil {
		return nil, &ValidationError{Field: "course_id", Message: err.Error()}
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, WrapError(err, "failed to load course")
	}

	videos, err := s.videos.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, WrapError(err, "failed to load course videos")
	}

	limitMinutes := input.CognitiveLimitMinutes
	if limitMinutes == 0 {
		prefs, err := s.prefs.Load(ctx)
		if err != nil {
			return nil, WrapError(err, "failed to load preferences")
		}
		limitMinutes = prefs.CognitiveLimitMinutes
	}

	durations := make([]uint32, len(videos))
	var boundaries []int
	for i, v := range videos {
		durations[i] = v.DurationSecs
		if i > 0 && v.ModuleID != videos[i-1].ModuleID {
			boundaries = append(boundaries, i)
		}
	}

	p := planner.NewSessionPlanner(domain.NewCognitiveLimit(limitMinutes))
	sessions := p.PlanSessions(durations, boundaries)
	return &PlanSessionOutput{Sessions: sessions, EstimatedDays: len(sessions)}, nil
}
