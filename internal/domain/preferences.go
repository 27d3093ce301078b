package domain

// PreferencesID is the singleton row key for user preferences.
const PreferencesID = "default"

// UserPreferences is the single-row aggregate of user-tunable settings.
type UserPreferences struct {
	MLBoundaryEnabled     bool   `json:"ml_boundary_enabled"`
	CognitiveLimitMinutes uint32 `json:"cognitive_limit_minutes"`
	RightPanelVisible     bool   `json:"right_panel_visible"`
	RightPanelWidth       uint32 `json:"right_panel_width"`
	OnboardingCompleted   bool   `json:"onboarding_completed"`
}

// DefaultPreferences returns the defaults used when no row has been stored yet.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		MLBoundaryEnabled:     true,
		CognitiveLimitMinutes: DefaultCognitiveLimitMinutes,
		RightPanelVisible:     true,
		RightPanelWidth:       360,
		OnboardingCompleted:   false,
	}
}

// AppAnalytics aggregates progress counters across all courses.
type AppAnalytics struct {
	TotalCourses          uint32 `json:"total_courses"`
	TotalModules          uint32 `json:"total_modules"`
	TotalVideos           uint32 `json:"total_videos"`
	CompletedVideos       uint32 `json:"completed_videos"`
	TotalDurationSecs     uint64 `json:"total_duration_secs"`
	CompletedDurationSecs uint64 `json:"completed_duration_secs"`
	VideosWithSummary     uint32 `json:"videos_with_summary"`
}

// CompletionRatio returns completed/total videos, 0 when there are no videos.
func (a AppAnalytics) CompletionRatio() float64 {
	if a.TotalVideos == 0 {
		return 0
	}
	return float64(a.CompletedVideos) / float64(a.TotalVideos)
}

// SummaryCoverage returns the fraction of videos carrying a summary, 0 when
// there are no videos.
func (a AppAnalytics) SummaryCoverage() float64 {
	if a.TotalVideos == 0 {
		return 0
	}
	return float64(a.VideosWithSummary) / float64(a.TotalVideos)
}
