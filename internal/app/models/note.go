package models

import "time"

// NoteStatus is the lifecycle state of a field note.
type NoteStatus string

const (
	NoteStatusDraft     NoteStatus = "draft"
	NoteStatusSubmitted NoteStatus = "submitted"
	NoteStatusArchived  NoteStatus = "archived"
)

// Note is a field note attached to a section of a renovation project.
// Every read and write of a note is scoped by UserID; a note whose
// DeletedAt is set is invisible to normal reads.
type Note struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	ProjectID      string     `db:"project_id"`
	SectionID      string     `db:"section_id"`
	Content        string     `db:"content"`
	Status         NoteStatus `db:"status"`
	Images         []string   `db:"images"`
	Audio          *string    `db:"audio"`
	Tags           []string   `db:"tags"`
	ContractorName *string    `db:"contractor_name"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
	VersionNumber  int        `db:"version_number"`
}
