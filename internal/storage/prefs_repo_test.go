package storage

import (
	"context"
	"testing"

	"coursepilot/internal/domain"
)

func TestPreferencesRepo_LoadDefaultsWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferencesRepo(db)

	prefs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs != domain.DefaultPreferences() {
		t.Errorf("Load() = %+v, want defaults %+v", prefs, domain.DefaultPreferences())
	}
	if prefs.CognitiveLimitMinutes != 45 {
		t.Errorf("CognitiveLimitMinutes = %d, want 45", prefs.CognitiveLimitMinutes)
	}
}

func TestPreferencesRepo_SaveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferencesRepo(db)
	ctx := context.Background()

	want := domain.UserPreferences{
		MLBoundaryEnabled:     false,
		CognitiveLimitMinutes: 90,
		RightPanelVisible:     false,
		RightPanelWidth:       420,
		OnboardingCompleted:   true,
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	// Saving again upserts the singleton row instead of adding a second one.
	want.CognitiveLimitMinutes = 30
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM user_preferences").Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 1 {
		t.Errorf("user_preferences rows = %d, want 1", count)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.CognitiveLimitMinutes != 30 {
		t.Errorf("CognitiveLimitMinutes = %d, want 30", got.CognitiveLimitMinutes)
	}
}
