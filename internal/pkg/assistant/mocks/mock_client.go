package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teczka-budowlanca/backend/internal/pkg/assistant"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GenerateInspectionChecklist(ctx context.Context, property assistant.PropertyData) ([]string, error) {
	args := m.Called(ctx, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) GenerateContractorQuestions(ctx context.Context, sectionType string, propertyData map[string]interface{}) ([]string, error) {
	args := m.Called(ctx, sectionType, propertyData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
