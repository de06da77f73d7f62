package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/teczka-budowlanca/backend/internal/app/models"
	"github.com/teczka-budowlanca/backend/internal/app/repositories"
)

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, userID, noteID string) (*models.Note, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) ListBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) ([]*models.Note, int64, error) {
	args := m.Called(ctx, userID, projectID, sectionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Note), args.Get(1).(int64), args.Error(2)
}

func (m *MockNoteRepository) Update(ctx context.Context, userID, noteID string, patch repositories.NotePatch) (*models.Note, error) {
	args := m.Called(ctx, userID, noteID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) SoftDelete(ctx context.Context, userID, noteID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, noteID, deletedAt)
	return args.Error(0)
}

func (m *MockNoteRepository) HardDelete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}
