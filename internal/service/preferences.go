package service

import (
	"context"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// PreferencesService owns the single-row preferences aggregate.
type PreferencesService struct {
	prefs storage.PreferencesStore
}

// NewPreferencesService creates a PreferencesService.
func NewPreferencesService(prefs storage.PreferencesStore) *PreferencesService {
	return &PreferencesService{prefs: prefs}
}

// Load returns the stored preferences or the defaults when nothing has been
// saved yet.
func (s *PreferencesService) Load(ctx context.Context) (domain.UserPreferences, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return domain.UserPreferences{}, WrapError(err, "failed to load preferences")
	}
	return prefs, nil
}

// PreferencesUpdate merges set fields into the stored row; nil fields are left
// unchanged.
type PreferencesUpdate struct {
	MLBoundaryEnabled     *bool   `json:"ml_boundary_enabled"`
	CognitiveLimitMinutes *uint32 `json:"cognitive_limit_minutes"`
	RightPanelVisible     *bool   `json:"right_panel_visible"`
	RightPanelWidth       *uint32 `json:"right_panel_width"`
	OnboardingCompleted   *bool   `json:"onboarding_completed"`
}

// Update merges the input into the current preferences and upserts the row.
// A cognitive limit of 0 is normalized to the 45-minute default.
func (s *PreferencesService) Update(ctx context.Context, update PreferencesUpdate) (domain.UserPreferences, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return domain.UserPreferences{}, WrapError(err, "failed to load preferences")
	}

	if update.MLBoundaryEnabled != nil {
		prefs.MLBoundaryEnabled = *update.MLBoundaryEnabled
	}
	if update.CognitiveLimitMinutes != nil {
		prefs.CognitiveLimitMinutes = domain.NewCognitiveLimit(*update.CognitiveLimitMinutes).Minutes()
	}
	if update.RightPanelVisible != nil {
		prefs.RightPanelVisible = *update.RightPanelVisible
	}
	if update.RightPanelWidth != nil {
		prefs.RightPanelWidth = *update.RightPanelWidth
	}
	if update.OnboardingCompleted != nil {
		prefs.OnboardingCompleted = *update.OnboardingCompleted
	}

	if err := s.prefs.Save(ctx, prefs); err != nil {
		return domain.UserPreferences{}, WrapError(err, "failed to save preferences")
	}
	return prefs, nil
}
