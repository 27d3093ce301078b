package service

import (
	"context"
	"errors"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// CourseService owns course-level management: listing, metadata updates,
// module renames, video moves, completion toggles, and deletion.
type CourseService struct {
	courses storage.CourseStore
	modules storage.ModuleStore
	videos  storage.VideoStore
	notes   storage.NoteStore
	search  storage.SearchStore
}

// NewCourseService creates a CourseService.
func NewCourseService(
	courses storage.CourseStore,
	modules storage.ModuleStore,
	videos storage.VideoStore,
	notes storage.NoteStore,
	search storage.SearchStore,
) *CourseService {
	return &CourseService{courses: courses, modules: modules, videos: videos, notes: notes, search: search}
}

// List returns every course.
func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list courses")
	}
	return courses, nil
}

// CourseDetail is a course with its modules and videos in order.
type CourseDetail struct {
	Course  *domain.Course  `json:"course"`
	Modules []*ModuleDetail `json:"modules"`
}

// ModuleDetail is a module with its ordered videos.
type ModuleDetail struct {
	Module *domain.Module  `json:"module"`
	Videos []*domain.Video `json:"videos"`
}

// Get loads a course with its full module/video tree.
func (s *CourseService) Get(ctx context.Context, courseID string) (*CourseDetail, error) {
	id, err := domain.ParseCourseID(courseID)
	if err != nil {
		return nil, &ValidationError{Field: "course_id", Message: err.Error()}
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, WrapError(err, "failed to load course")
	}

	modules, err := s.modules.FindByCourse(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to load modules")
	}

	detail := &CourseDetail{Course: course}
	for _, m := range modules {
		videos, err := s.videos.FindByModule(ctx, m.ID)
		if err != nil {
			return nil, WrapError(err, "failed to load videos")
		}
		detail.Modules = append(detail.Modules, &ModuleDetail{Module: m, Videos: videos})
	}
	return detail, nil
}

// UpdateMetadata renames a course and/or replaces its description, then
// re-indexes the course row.
func (s *CourseService) UpdateMetadata(ctx context.Context, courseID, name, description string) error {
	id, err := domain.ParseCourseID(courseID)
	if err != nil {
		return &ValidationError{Field: "course_id", Message: err.Error()}
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("course")
		}
		return WrapError(err, "failed to load course")
	}

	if err := course.UpdateMetadata(name, description); err != nil {
		return &ValidationError{Field: "name", Message: err.Error()}
	}
	if err := s.courses.Save(ctx, course); err != nil {
		return WrapError(err, "failed to save course")
	}
	if err := s.search.IndexCourse(ctx, id, course.Name, course.Description); err != nil {
		return WrapError(err, "failed to re-index course")
	}
	return nil
}

// UpdateModuleTitle renames a module.
func (s *CourseService) UpdateModuleTitle(ctx context.Context, moduleID, title string) error {
	id, err := domain.ParseModuleID(moduleID)
	if err != nil {
		return &ValidationError{Field: "module_id", Message: err.Error()}
	}

	module, err := s.modules.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("module")
		}
		return WrapError(err, "failed to load module")
	}

	if err := module.Rename(title); err != nil {
		return &ValidationError{Field: "title", Message: err.Error()}
	}
	if err := s.modules.Save(ctx, module); err != nil {
		return WrapError(err, "failed to save module")
	}
	return nil
}

// MoveVideoToModule reparents a video into another module of the same course,
// appending it at the end of the target's ordering.
func (s *CourseService) MoveVideoToModule(ctx context.Context, videoID, targetModuleID string) error {
	vID, err := domain.ParseVideoID(videoID)
	if err != nil {
		return &ValidationError{Field: "video_id", Message: err.Error()}
	}
	mID, err := domain.ParseModuleID(targetModuleID)
	if err != nil {
		return &ValidationError{Field: "module_id", Message: err.Error()}
	}

	video, err := s.videos.FindByID(ctx, vID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("video")
		}
		return WrapError(err, "failed to load video")
	}

	source, err := s.modules.FindByID(ctx, video.ModuleID)
	if err != nil {
		return WrapError(err, "failed to load source module")
	}
	target, err := s.modules.FindByID(ctx, mID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("module")
		}
		return WrapError(err, "failed to load target module")
	}
	if source.CourseID != target.CourseID {
		return &ValidationError{Field: "module_id", Message: "target module belongs to a different course"}
	}

	sortOrder, err := s.videos.NextSortOrder(ctx, mID)
	if err != nil {
		return WrapError(err, "failed to compute sort order")
	}
	if err := s.videos.MoveToModule(ctx, vID, mID, sortOrder); err != nil {
		return WrapError(err, "failed to move video")
	}
	return nil
}

// SetVideoCompleted toggles a video's completion flag explicitly (as opposed
// to the exam-pass side effect).
func (s *CourseService) SetVideoCompleted(ctx context.Context, videoID string, completed bool) error {
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return &ValidationError{Field: "video_id", Message: err.Error()}
	}
	if err := s.videos.UpdateCompletion(ctx, id, completed); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("video")
		}
		return WrapError(err, "failed to update completion")
	}
	return nil
}

// Delete removes a course and everything under it. SQL CASCADE takes the
// relational rows; the search rows are removed explicitly since foreign keys
// do not reach the FTS table.
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	id, err := domain.ParseCourseID(courseID)
	if err != nil {
		return &ValidationError{Field: "course_id", Message: err.Error()}
	}

	videos, err := s.videos.FindByCourse(ctx, id)
	if err != nil {
		return WrapError(err, "failed to load course videos")
	}

	var noteIDs []domain.NoteID
	for _, v := range videos {
		note, err := s.notes.FindByVideo(ctx, v.ID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return WrapError(err, "failed to load note")
		}
		noteIDs = append(noteIDs, note.ID)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("course")
		}
		return WrapError(err, "failed to delete course")
	}

	if err := s.search.RemoveFromIndex(ctx, id.String()); err != nil {
		return WrapError(err, "failed to remove course from index")
	}
	for _, v := range videos {
		if err := s.search.RemoveFromIndex(ctx, v.ID.String()); err != nil {
			return WrapError(err, "failed to remove video from index")
		}
	}
	for _, nID := range noteIDs {
		if err := s.search.RemoveFromIndex(ctx, nID.String()); err != nil {
			return WrapError(err, "failed to remove note from index")
		}
	}

	logger.InfoContext(ctx, "course deleted", "course_id", id, "videos", len(videos))
	return nil
}
