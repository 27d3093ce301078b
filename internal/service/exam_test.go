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

func fourQuestions() []domain.MCQ {
	qs := make([]domain.MCQ, 4)
	for i := range qs {
		qs[i] = domain.MCQ{
			Question:     "Q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i,
		}
	}
	return qs
}

func TestExamService_GenerateAndSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Goroutines", 600, 0)

	examiner := mocks.NewMockExaminerAI(ctrl)
	examiner.EXPECT().GenerateMCQ(gomock.Any(), "Goroutines", "", 4).Return(fourQuestions(), nil)

	videoRepo := storage.NewVideoRepo(db)
	svc := service.NewExamService(videoRepo, storage.NewExamRepo(db), examiner)

	gen, err := svc.Generate(ctx, video.ID.String(), 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(gen.Questions) != 4 {
		t.Fatalf("Generate() returned %d questions, want 4", len(gen.Questions))
	}

	// Three of four correct: above the 0.70 threshold, video gets completed.
	out, err := svc.Submit(ctx, gen.ExamID.String(), []int{0, 1, 0, 3})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if out.Score != 0.75 || !out.Passed || !out.VideoMarkedComplete {
		t.Errorf("Submit() = %+v, want score 0.75, passed, marked complete", out)
	}

	loaded, err := videoRepo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !loaded.IsCompleted {
		t.Error("video was not marked complete after a passing submission")
	}
}

func TestExamService_SubmitFailingScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Course")
	module := seedModule(t, db, course.ID, "Module 1", 0)
	video := seedVideo(t, db, module.ID, "Channels", 600, 0)

	examiner := mocks.NewMockExaminerAI(ctrl)
	examiner.EXPECT().GenerateMCQ(gomock.Any(), "Channels", "", 4).Return(fourQuestions(), nil)

	videoRepo := storage.NewVideoRepo(db)
	svc := service.NewExamService(videoRepo, storage.NewExamRepo(db), examiner)

	gen, err := svc.Generate(ctx, video.ID.String(), 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	out, err := svc.Submit(ctx, gen.ExamID.String(), []int{1, 1, 0, 0})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if out.Score != 0.25 || out.Passed || out.VideoMarkedComplete {
		t.Errorf("Submit() = %+v, want score 0.25, failed, not marked", out)
	}

	loaded, err := videoRepo.FindByID(ctx, video.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if loaded.IsCompleted {
		t.Error("video completion changed after a failing submission")
	}

	// The result is persisted on the exam row either way.
	exam, err := storage.NewExamRepo(db).FindByID(ctx, gen.ExamID)
	if err != nil {
		t.Fatalf("ExamRepo.FindByID() error = %v", err)
	}
	if exam.Score == nil || *exam.Score != 0.25 || exam.Passed == nil || *exam.Passed {
		t.Errorf("stored exam = %+v", exam)
	}
	if exam.UserAnswersJSON != "[1,1,0,0]" {
		t.Errorf("UserAnswersJSON = %q", exam.UserAnswersJSON)
	}
}

func TestExamService_Generate_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newTestDB(t)
	ctx := context.Background()

	svc := service.NewExamService(storage.NewVideoRepo(db), storage.NewExamRepo(db), mocks.NewMockExaminerAI(ctrl))

	if _, err := svc.Generate(ctx, domain.NewVideoID().String(), 0); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Generate(count 0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Generate(ctx, domain.NewVideoID().String(), 51); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Generate(count 51) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Generate(ctx, "not-a-uuid", 4); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Generate(bad id) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Generate(ctx, domain.NewVideoID().String(), 4); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Generate(absent video) error = %v, want ErrNotFound", err)
	}

	unconfigured := service.NewExamService(storage.NewVideoRepo(db), storage.NewExamRepo(db), nil)
	if _, err := unconfigured.Generate(ctx, domain.NewVideoID().String(), 4); !errors.Is(err, service.ErrInvalidState) {
		t.Errorf("Generate(no examiner) error = %v, want ErrInvalidState", err)
	}
}

func TestExamService_Submit_Errors(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := service.NewExamService(storage.NewVideoRepo(db), storage.NewExamRepo(db), nil)

	if _, err := svc.Submit(ctx, "not-a-uuid", []int{0}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Submit(bad id) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Submit(ctx, domain.NewExamID().String(), []int{0}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Submit(absent exam) error = %v, want ErrNotFound", err)
	}
}
