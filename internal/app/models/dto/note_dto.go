package dto

import (
	"time"

	"github.com/teczka-budowlanca/backend/internal/app/models"
)

// --- Request DTOs ---

// CreateNoteRequest represents the data needed to create a new note.
// The owning user always comes from the authenticated identity, never the body.
type CreateNoteRequest struct {
	Content        string   `json:"content" binding:"required" example:"leak under the kitchen sink"` // Free-form note body
	SectionID      string   `json:"sectionId" binding:"required" example:"bathroom"`                  // Section the note belongs to
	ProjectID      string   `json:"projectId" binding:"required" example:"3f6c1d2e"`                  // Owning project
	Tags           []string `json:"tags,omitempty" example:"plumbing,urgent"`                         // Optional tags, defaults to empty
	ContractorName *string  `json:"contractorName,omitempty" example:"Jan Kowalski"`                  // Optional contractor reference
}

// UpdateNoteRequest is a partial patch: only fields present in the body are
// applied, absent fields keep their stored value.
type UpdateNoteRequest struct {
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Status  *string   `json:"status,omitempty" binding:"omitempty,oneof=draft submitted archived"`
}

// Empty reports whether the patch carries no fields at all.
func (r *UpdateNoteRequest) Empty() bool {
	return r.Content == nil && r.Tags == nil && r.Status == nil
}

// --- Response DTOs ---

// NoteResponse represents the data returned for a single note.
type NoteResponse struct {
	ID             string     `json:"id" example:"b2dd2f1c-9c3a-4f3e-8b0f-2f9d7a6c1e44"`
	UserID         string     `json:"userId" example:"7f3d9a12"`
	ProjectID      string     `json:"projectId" example:"3f6c1d2e"`
	SectionID      string     `json:"sectionId" example:"bathroom"`
	Content        string     `json:"content" example:"leak under the kitchen sink"`
	Status         string     `json:"status" example:"draft"`
	Images         []string   `json:"images"`
	Audio          *string    `json:"audio"`
	Tags           []string   `json:"tags"`
	ContractorName *string    `json:"contractorName"`
	CreatedAt      time.Time  `json:"createdAt" example:"2025-08-30T10:00:00Z"`
	UpdatedAt      time.Time  `json:"updatedAt" example:"2025-08-30T11:30:00Z"`
	DeletedAt      *time.Time `json:"deletedAt"`
	VersionNumber  int        `json:"versionNumber" example:"1"`
}

// NoteListResponse represents one page of notes plus the total match count,
// which is independent of the pagination window.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int64          `json:"total" example:"12"`
}

// NewNoteResponse maps a domain note to its wire representation.
func NewNoteResponse(n *models.Note) NoteResponse {
	return NoteResponse{
		ID:             n.ID,
		UserID:         n.UserID,
		ProjectID:      n.ProjectID,
		SectionID:      n.SectionID,
		Content:        n.Content,
		Status:         string(n.Status),
		Images:         n.Images,
		Audio:          n.Audio,
		Tags:           n.Tags,
		ContractorName: n.ContractorName,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		DeletedAt:      n.DeletedAt,
		VersionNumber:  n.VersionNumber,
	}
}
