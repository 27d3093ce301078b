package domain

import "time"

// Note is the user's free-form text for one video. There is at most one note
// per video.
type Note struct {
	ID        NoteID
	VideoID   VideoID
	Content   string
	UpdatedAt time.Time
}

// EmptyNoteForVideo creates a fresh, empty note bound to a video.
func EmptyNoteForVideo(videoID VideoID) *Note {
	return &Note{ID: NewNoteID(), VideoID: videoID, UpdatedAt: time.Now().UTC()}
}

// SetContent replaces the note body and refreshes the update timestamp.
func (n *Note) SetContent(content string) {
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
}

// Tag labels courses; many-to-many via the course_tags link table.
type Tag struct {
	ID    TagID
	Name  string
	Color string
}

// NewTag builds a tag.
func NewTag(id TagID, name, color string) *Tag {
	return &Tag{ID: id, Name: name, Color: color}
}
