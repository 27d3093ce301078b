package service

import (
	"context"
	"errors"
	"time"

	"coursepilot/internal/domain"
	"coursepilot/internal/storage"
)

// NotesService owns note CRUD. Saving and loading both re-index the note so
// the search index self-heals on read.
type NotesService struct {
	videos  storage.VideoStore
	modules storage.ModuleStore
	courses storage.CourseStore
	tags    storage.TagStore
	notes   storage.NoteStore
	search  storage.SearchStore
}

// NewNotesService creates a NotesService.
func NewNotesService(
	videos storage.VideoStore,
	modules storage.ModuleStore,
	courses storage.CourseStore,
	tags storage.TagStore,
	notes storage.NoteStore,
	search storage.SearchStore,
) *NotesService {
	return &NotesService{
		videos:  videos,
		modules: modules,
		courses: courses,
		tags:    tags,
		notes:   notes,
		search:  search,
	}
}

// NoteView is a note enriched with its video, module, course, and tag context.
type NoteView struct {
	NoteID      domain.NoteID `json:"note_id"`
	VideoID     domain.VideoID `json:"video_id"`
	VideoTitle  string        `json:"video_title"`
	ModuleTitle string        `json:"module_title"`
	CourseID    domain.CourseID `json:"course_id"`
	CourseName  string        `json:"course_name"`
	Content     string        `json:"content"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Tags        []*domain.Tag `json:"tags"`
}

// Save creates or updates the video's single note and re-indexes it under the
// video's title.
func (s *NotesService) Save(ctx context.Context, videoID, content string) (*NoteView, error) {
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return nil, &ValidationError{Field: "video_id", Message: err.Error()}
	}

	nctx, err := s.resolveNoteContext(ctx, id)
	if err != nil {
		return nil, err
	}

	note, err := s.notes.FindByVideo(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		note = domain.EmptyNoteForVideo(id)
	} else if err != nil {
		return nil, WrapError(err, "failed to load note")
	}

	note.SetContent(content)
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, WrapError(err, "failed to save note")
	}
	if err := s.search.IndexNote(ctx, note.ID, nctx.course.ID, nctx.video.Title, note.Content); err != nil {
		return nil, WrapError(err, "failed to index note")
	}

	return s.buildView(ctx, note, nctx)
}

// Load returns the enriched note for a video, re-indexing it as a side effect.
// A video without a note returns ErrNotFound.
func (s *NotesService) Load(ctx context.Context, videoID string) (*NoteView, error) {
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return nil, &ValidationError{Field: "video_id", Message: err.Error()}
	}

	nctx, err := s.resolveNoteContext(ctx, id)
	if err != nil {
		return nil, err
	}

	note, err := s.notes.FindByVideo(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("note")
	}
	if err != nil {
		return nil, WrapError(err, "failed to load note")
	}

	// Self-heal the search index on read
	if err := s.search.IndexNote(ctx, note.ID, nctx.course.ID, nctx.video.Title, note.Content); err != nil {
		return nil, WrapError(err, "failed to index note")
	}

	return s.buildView(ctx, note, nctx)
}

// Delete removes the video's note and its search rows. Deleting a video with
// no note is a no-op.
func (s *NotesService) Delete(ctx context.Context, videoID string) error {
	id, err := domain.ParseVideoID(videoID)
	if err != nil {
		return &ValidationError{Field: "video_id", Message: err.Error()}
	}

	note, err := s.notes.FindByVideo(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return WrapError(err, "failed to load note")
	}

	if err := s.notes.Delete(ctx, note.ID); err != nil {
		return WrapError(err, "failed to delete note")
	}
	if err := s.search.RemoveFromIndex(ctx, note.ID.String()); err != nil {
		return WrapError(err, "failed to remove note from index")
	}
	return nil
}

type noteContext struct {
	video  *domain.Video
	module *domain.Module
	course *domain.Course
}

func (s *NotesService) resolveNoteContext(ctx context.Context, id domain.VideoID) (*noteContext, error) {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("video")
		}
		return nil, WrapError(err, "failed to load video")
	}
	module, err := s.modules.FindByID(ctx, video.ModuleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("module")
		}
		return nil, WrapError(err, "failed to load module")
	}
	course, err := s.courses.FindByID(ctx, module.CourseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, WrapError(err, "failed to load course")
	}
	return &noteContext{video: video, module: module, course: course}, nil
}

func (s *NotesService) buildView(ctx context.Context, note *domain.Note, nctx *noteContext) (*NoteView, error) {
	tags, err := s.tags.FindByCourse(ctx, nctx.course.ID)
	if err != nil {
		return nil, WrapError(err, "failed to load tags")
	}
	return &NoteView{
		NoteID:      note.ID,
		VideoID:     note.VideoID,
		VideoTitle:  nctx.video.Title,
		ModuleTitle: nctx.module.Title,
		CourseID:    nctx.course.ID,
		CourseName:  nctx.course.Name,
		Content:     note.Content,
		UpdatedAt:   note.UpdatedAt,
		Tags:        tags,
	}, nil
}
