package service

import (
	"context"
	"errors"
	"strings"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// TagService manages tags and their course links.
type TagService struct {
	tags    storage.TagStore
	courses storage.CourseStore
}

// NewTagService creates a TagService.
func NewTagService(tags storage.TagStore, courses storage.CourseStore) *TagService {
	return &TagService{tags: tags, courses: courses}
}

// Create stores a new tag. The name must be non-empty after trimming.
func (s *TagService) Create(ctx context.Context, name, color string) (*domain.Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, &ValidationError{Field: "name", Message: "tag name cannot be empty"}
	}

	tag := domain.NewTag(domain.NewTagID(), trimmed, color)
	if err := s.tags.Save(ctx, tag); err != nil {
		return nil, WrapError(err, "failed to save tag")
	}
	return tag, nil
}

// List returns all tags ordered by name.
func (s *TagService) List(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.tags.FindAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list tags")
	}
	return tags, nil
}

// ListForCourse returns the tags linked to a course.
func (s *TagService) ListForCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Tag, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, WrapError(err, "failed to load course")
	}
	tags, err := s.tags.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, WrapError(err, "failed to list course tags")
	}
	return tags, nil
}

// Link attaches a tag to a course. Linking an already linked pair is a no-op.
func (s *TagService) Link(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("course")
		}
		return WrapError(err, "failed to load course")
	}
	if err := s.tags.LinkCourse(ctx, courseID, tagID); err != nil {
		return WrapError(err, "failed to link tag")
	}
	return nil
}

// Unlink detaches a tag from a course.
func (s *TagService) Unlink(ctx context.Context, courseID domain.CourseID, tagID domain.TagID) error {
	if err := s.tags.UnlinkCourse(ctx, courseID, tagID); err != nil {
		return WrapError(err, "failed to unlink tag")
	}
	return nil
}

// Delete removes a tag and all its course links.
func (s *TagService) Delete(ctx context.Context, tagID domain.TagID) error {
	if err := s.tags.Delete(ctx, tagID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("tag")
		}
		return WrapError(err, "failed to delete tag")
	}
	return nil
}
