package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
)

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NoteResponse), args.Error(1)
}

func (m *MockNoteService) GetNotesBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) (*dto.NoteListResponse, error) {
	args := m.Called(ctx, userID, projectID, sectionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NoteListResponse), args.Error(1)
}

func (m *MockNoteService) GetNoteByID(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NoteResponse), args.Error(1)
}

func (m *MockNoteService) UpdateNote(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userID, noteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NoteResponse), args.Error(1)
}

func (m *MockNoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func (m *MockNoteService) HardDeleteNote(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}
