package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
)

type MockChecklistService struct {
	mock.Mock
}

func (m *MockChecklistService) GenerateInspectionChecklist(ctx context.Context, req *dto.InspectionChecklistRequest) (*dto.ChecklistResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChecklistResponse), args.Error(1)
}

func (m *MockChecklistService) GenerateContractorQuestions(ctx context.Context, req *dto.ContractorQuestionsRequest) (*dto.QuestionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionsResponse), args.Error(1)
}
