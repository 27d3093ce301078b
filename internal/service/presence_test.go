package service_test

import (
	"context"
	"errors"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
	"coursepilot/internal/service/mocks"
	"coursepilot/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestPresenceService_UpdatePresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Databases")
	module := seedModule(t, db, course.ID, "Indexes", 0)
	video := seedVideo(t, db, module.ID, "B-Trees", 600, 0)

	provider := mocks.NewMockPresenceProvider(ctrl)
	provider.EXPECT().UpdateActivity(service.Activity{
		Details: "Studying Databases",
		State:   "B-Trees",
	})

	svc := service.NewPresenceService(provider, storage.NewVideoRepo(db), storage.NewModuleRepo(db), storage.NewCourseRepo(db))
	if err := svc.UpdatePresence(ctx, video.ID); err != nil {
		t.Fatalf("UpdatePresence() error = %v", err)
	}
}

func TestPresenceService_UpdatePresence_AbsentVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)

	svc := service.NewPresenceService(
		mocks.NewMockPresenceProvider(ctrl),
		storage.NewVideoRepo(db), storage.NewModuleRepo(db), storage.NewCourseRepo(db),
	)
	err := svc.UpdatePresence(context.Background(), domain.NewVideoID())
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("UpdatePresence() error = %v, want ErrNotFound", err)
	}
}

func TestPresenceService_DisabledProviderIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := service.NewPresenceService(nil, storage.NewVideoRepo(db), storage.NewModuleRepo(db), storage.NewCourseRepo(db))
	if err := svc.UpdatePresence(ctx, domain.NewVideoID()); err != nil {
		t.Errorf("UpdatePresence() with nil provider error = %v, want nil", err)
	}
	svc.ClearPresence(ctx) // must not panic
}

func TestPresenceService_ClearPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)

	provider := mocks.NewMockPresenceProvider(ctrl)
	provider.EXPECT().ClearActivity()

	svc := service.NewPresenceService(provider, storage.NewVideoRepo(db), storage.NewModuleRepo(db), storage.NewCourseRepo(db))
	svc.ClearPresence(context.Background())
}
