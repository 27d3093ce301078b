package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"coursepilot/internal/domain"
	"coursepilot/internal/service"
	"coursepilot/internal/storage"
)

func newTagService(db *sql.DB) *service.TagService {
	return service.NewTagService(storage.NewTagRepo(db), storage.NewCourseRepo(db))
}

func TestTagService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newTagService(db)

	tag, err := svc.Create(ctx, "  concurrency  ", "#ff8800")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tag.Name != "concurrency" {
		t.Errorf("Name = %q, want trimmed", tag.Name)
	}

	tags, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tags) != 1 || tags[0].ID != tag.ID {
		t.Errorf("List() = %+v", tags)
	}

	if _, err := svc.Create(ctx, "   ", "#fff"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Create(blank name) error = %v, want ErrInvalidInput", err)
	}
}

func TestTagService_LinkListUnlink(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newTagService(db)

	course := seedCourse(t, db, "Course")
	tag, err := svc.Create(ctx, "db", "#336791")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Link(ctx, course.ID, tag.ID); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	linked, err := svc.ListForCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListForCourse() error = %v", err)
	}
	if len(linked) != 1 || linked[0].ID != tag.ID {
		t.Errorf("ListForCourse() = %+v", linked)
	}

	if err := svc.Unlink(ctx, course.ID, tag.ID); err != nil {
		t.Fatalf("Unlink() error = %v", err)
	}
	linked, err = svc.ListForCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListForCourse() error = %v", err)
	}
	if len(linked) != 0 {
		t.Errorf("ListForCourse() after unlink = %+v", linked)
	}

	if err := svc.Link(ctx, domain.NewCourseID(), tag.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Link(absent course) error = %v, want ErrNotFound", err)
	}
	if _, err := svc.ListForCourse(ctx, domain.NewCourseID()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("ListForCourse(absent course) error = %v, want ErrNotFound", err)
	}
}

func TestTagService_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := newTagService(db)

	tag, err := svc.Create(ctx, "temp", "#000")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(ctx, tag.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, domain.NewTagID()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Delete(absent) error = %v, want ErrNotFound", err)
	}
}
