package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// PreferencesStore defines the interface for the preferences singleton row.
type PreferencesStore interface {
	Load(ctx context.Context) (domain.UserPreferences, error)
	Save(ctx context.Context, prefs domain.UserPreferences) error
}

// PreferencesRepo provides SQLite-backed preferences persistence. It implements
// PreferencesStore.
type PreferencesRepo struct {
	db *sql.DB
}

// NewPreferencesRepo creates a new PreferencesRepo.
func NewPreferencesRepo(db *sql.DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

// Load returns the stored row, or the constructed defaults when no row exists
// yet.
func (r *PreferencesRepo) Load(ctx context.Context) (domain.UserPreferences, error) {
	var p domain.UserPreferences
	err := r.db.QueryRowContext(ctx,
		`SELECT ml_boundary_enabled, cognitive_limit_minutes, right_panel_visible,
		 right_panel_width, onboarding_completed
		 FROM user_preferences WHERE id = ?`,
		domain.PreferencesID,
	).Scan(&p.MLBoundaryEnabled, &p.CognitiveLimitMinutes, &p.RightPanelVisible,
		&p.RightPanelWidth, &p.OnboardingCompleted)
	if err == sql.ErrNoRows {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("failed to query preferences: %w", err)
	}
	return p, nil
}

// Save upserts the singleton row.
func (r *PreferencesRepo) Save(ctx context.Context, prefs domain.UserPreferences) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_preferences (id, ml_boundary_enabled, cognitive_limit_minutes,
		 right_panel_visible, right_panel_width, onboarding_completed)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 ml_boundary_enabled = excluded.ml_boundary_enabled,
		 cognitive_limit_minutes = excluded.cognitive_limit_minutes,
		 right_panel_visible = excluded.right_panel_visible,
		 right_panel_width = excluded.right_panel_width,
		 onboarding_completed = excluded.onboarding_completed`,
		domain.PreferencesID, prefs.MLBoundaryEnabled, prefs.CognitiveLimitMinutes,
		prefs.RightPanelVisible, prefs.RightPanelWidth, prefs.OnboardingCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
