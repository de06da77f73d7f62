package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teczka-budowlanca/backend/internal/app/models"
	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/app/repositories"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
)

const (
	// DefaultNoteLimit applies when a list caller does not specify a window.
	DefaultNoteLimit = 50
	// MaxNoteLimit caps a single page.
	MaxNoteLimit = 200
)

// NoteService defines the note operations exposed to the HTTP surface. The
// userID argument is always the authenticated identity of the caller.
type NoteService interface {
	CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	GetNotesBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) (*dto.NoteListResponse, error)
	GetNoteByID(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error)
	UpdateNote(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	HardDeleteNote(ctx context.Context, userID, noteID string) error
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	noteRepo repositories.NoteRepository
	now      func() time.Time
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repositories.NoteRepository) NoteService {
	return &noteServiceImpl{
		noteRepo: noteRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateNote inserts a new draft note owned by userID. The owner is taken
// from the authenticated identity, never from the request body.
func (s *noteServiceImpl) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if req.Content == "" || req.SectionID == "" || req.ProjectID == "" {
		return nil, apperrors.NewValidationError("missing required fields: content, sectionId, projectId")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &models.Note{
		UserID:         userID,
		ProjectID:      req.ProjectID,
		SectionID:      req.SectionID,
		Content:        req.Content,
		Status:         models.NoteStatusDraft,
		Images:         []string{},
		Audio:          nil,
		Tags:           tags,
		ContractorName: req.ContractorName,
	}

	stored, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("create note error: %w", err)
	}

	resp := dto.NewNoteResponse(stored)
	return &resp, nil
}

// GetNotesBySection returns one page of the user's live notes in a section,
// newest first, plus the total match count.
func (s *noteServiceImpl) GetNotesBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) (*dto.NoteListResponse, error) {
	if projectID == "" || sectionID == "" {
		return nil, apperrors.NewValidationError("missing projectId or sectionId")
	}

	if limit <= 0 || limit > MaxNoteLimit {
		limit = DefaultNoteLimit
	}
	if offset < 0 {
		offset = 0
	}

	notes, total, err := s.noteRepo.ListBySection(ctx, userID, projectID, sectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get notes by section error: %w", err)
	}

	out := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, dto.NewNoteResponse(n))
	}

	return &dto.NoteListResponse{Notes: out, Total: total}, nil
}

// GetNoteByID returns one live note owned by userID. A foreign, deleted, or
// unknown note is indistinguishable from the caller's point of view.
func (s *noteServiceImpl) GetNoteByID(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get note by ID error: %w", err)
	}

	resp := dto.NewNoteResponse(note)
	return &resp, nil
}

// UpdateNote applies a partial patch to the scoped note. Fields absent from
// the request keep their stored value.
func (s *noteServiceImpl) UpdateNote(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.Empty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	patch := repositories.NotePatch{
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.Status != nil {
		status := models.NoteStatus(*req.Status)
		patch.Status = &status
	}

	note, err := s.noteRepo.Update(ctx, userID, noteID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update note error: %w", err)
	}

	resp := dto.NewNoteResponse(note)
	return &resp, nil
}

// DeleteNote soft-deletes the scoped note. The operation is idempotent: a
// repeated delete and a delete of an unknown id both report success.
func (s *noteServiceImpl) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepo.SoftDelete(ctx, userID, noteID, s.now()); err != nil {
		return fmt.Errorf("delete note error: %w", err)
	}
	return nil
}

// HardDeleteNote permanently removes the scoped note. It is not routed over
// HTTP; privilege checks are the caller's responsibility.
func (s *noteServiceImpl) HardDeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepo.HardDelete(ctx, userID, noteID); err != nil {
		return fmt.Errorf("hard delete note error: %w", err)
	}
	return nil
}
