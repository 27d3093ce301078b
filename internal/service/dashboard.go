package service

import (
	"context"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// DashboardService aggregates progress counters across all courses.
type DashboardService struct {
	courses storage.CourseStore
	modules storage.ModuleStore
	videos  storage.VideoStore
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(courses storage.CourseStore, modules storage.ModuleStore, videos storage.VideoStore) *DashboardService {
	return &DashboardService{courses: courses, modules: modules, videos: videos}
}

// DashboardOutput is the aggregate plus the derived percentages, which are
// guarded against division by zero.
type DashboardOutput struct {
	domain.AppAnalytics
	Completion      float64 `json:"completion"`
	SummaryCoverage float64 `json:"summary_coverage"`
}

// Load walks every course and sums counts and durations.
func (s *DashboardService) Load(ctx context.Context) (*DashboardOutput, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load courses")
	}

	var a domain.AppAnalytics
	a.TotalCourses = uint32(len(courses))

	for _, course := range courses {
		modules, err := s.modules.FindByCourse(ctx, course.ID)
		if err != nil {
			return nil, WrapError(err, "failed to load modules")
		}
		a.TotalModules += uint32(len(modules))

		videos, err := s.videos.FindByCourse(ctx, course.ID)
		if err != nil {
			return nil, WrapError(err, "failed to load videos")
		}
		a.TotalVideos += uint32(len(videos))

		for _, v := range videos {
			a.TotalDurationSecs += uint64(v.DurationSecs)
			if v.IsCompleted {
				a.CompletedVideos++
				a.CompletedDurationSecs += uint64(v.DurationSecs)
			}
			if v.Summary != "" {
				a.VideosWithSummary++
			}
		}
	}

	return &DashboardOutput{
		AppAnalytics:    a,
		Completion:      a.CompletionRatio(),
		SummaryCoverage: a.SummaryCoverage(),
	}, nil
}
