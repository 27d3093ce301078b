package service_test

import (
	"context"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
	"coursepilot/internal/storage"
)

func boolPtr(b bool) *bool    { return &b }
func u32Ptr(v uint32) *uint32 { return &v }

func TestPreferencesService_LoadDefaults(t *testing.T) {
	db := newTestDB(t)

	svc := service.NewPreferencesService(storage.NewPreferencesRepo(db))
	prefs, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs != domain.DefaultPreferences() {
		t.Errorf("Load() = %+v, want defaults", prefs)
	}
}

func TestPreferencesService_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := service.NewPreferencesService(storage.NewPreferencesRepo(db))

	updated, err := svc.Update(ctx, service.PreferencesUpdate{
		MLBoundaryEnabled:     boolPtr(false),
		CognitiveLimitMinutes: u32Ptr(90),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.MLBoundaryEnabled || updated.CognitiveLimitMinutes != 90 {
		t.Errorf("updated = %+v", updated)
	}
	// Untouched fields keep their defaults.
	if !updated.RightPanelVisible || updated.RightPanelWidth != 360 {
		t.Errorf("updated = %+v, unset fields should keep defaults", updated)
	}

	// A second partial update leaves the earlier change in place.
	updated, err = svc.Update(ctx, service.PreferencesUpdate{OnboardingCompleted: boolPtr(true)})
	if err != nil {
		t.Fatalf("second Update() error = %v", err)
	}
	if updated.MLBoundaryEnabled || updated.CognitiveLimitMinutes != 90 || !updated.OnboardingCompleted {
		t.Errorf("updated = %+v", updated)
	}
}

func TestPreferencesService_Update_NormalizesZeroLimit(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewPreferencesService(storage.NewPreferencesRepo(db))

	updated, err := svc.Update(context.Background(), service.PreferencesUpdate{
		CognitiveLimitMinutes: u32Ptr(0),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CognitiveLimitMinutes != domain.DefaultCognitiveLimitMinutes {
		t.Errorf("CognitiveLimitMinutes = %d, want %d", updated.CognitiveLimitMinutes, domain.DefaultCognitiveLimitMinutes)
	}
}
