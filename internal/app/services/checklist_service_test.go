package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/assistant"
	assistantMocks "github.com/teczka-budowlanca/backend/internal/pkg/assistant/mocks"
)

func TestGenerateInspectionChecklist(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		mockClient.On("GenerateInspectionChecklist", ctx, assistant.PropertyData{Area: 54.5, Year: 1978, Floor: 3}).
			Return([]string{"sprawdz stan instalacji elektrycznej", "sprawdz piony wodne"}, nil)

		service := NewChecklistService(mockClient)
		resp, err := service.GenerateInspectionChecklist(ctx, &dto.InspectionChecklistRequest{Area: 54.5, Year: 1978, Floor: 3})

		require.NoError(t, err)
		assert.Len(t, resp.Checklist, 2)
		mockClient.AssertExpectations(t)
	})

	t.Run("missing property data", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		service := NewChecklistService(mockClient)

		_, err := service.GenerateInspectionChecklist(ctx, &dto.InspectionChecklistRequest{Floor: 3})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "missing required fields: area, year")
		mockClient.AssertNotCalled(t, "GenerateInspectionChecklist")
	})

	t.Run("ground floor is a valid floor", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		mockClient.On("GenerateInspectionChecklist", ctx, assistant.PropertyData{Area: 38, Year: 2004, Floor: 0}).
			Return([]string{"sprawdz izolacje przeciwwilgociowa"}, nil)

		service := NewChecklistService(mockClient)
		resp, err := service.GenerateInspectionChecklist(ctx, &dto.InspectionChecklistRequest{Area: 38, Year: 2004, Floor: 0})

		require.NoError(t, err)
		assert.Len(t, resp.Checklist, 1)
	})

	t.Run("upstream failure maps to unavailable", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		mockClient.On("GenerateInspectionChecklist", ctx, mock.Anything).
			Return(nil, errors.New("status 429"))

		service := NewChecklistService(mockClient)
		_, err := service.GenerateInspectionChecklist(ctx, &dto.InspectionChecklistRequest{Area: 40, Year: 1990, Floor: 1})

		assert.ErrorIs(t, err, apperrors.ErrAssistantUnavailable)
	})
}

func TestGenerateContractorQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		propertyData := map[string]interface{}{"area": 54.5}
		mockClient := new(assistantMocks.MockClient)
		mockClient.On("GenerateContractorQuestions", ctx, "hydraulika", propertyData).
			Return([]string{"jaki jest koszt wymiany pionow?"}, nil)

		service := NewChecklistService(mockClient)
		resp, err := service.GenerateContractorQuestions(ctx, &dto.ContractorQuestionsRequest{
			SectionType:  "hydraulika",
			PropertyData: propertyData,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Questions, 1)
	})

	t.Run("missing section type", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		service := NewChecklistService(mockClient)

		_, err := service.GenerateContractorQuestions(ctx, &dto.ContractorQuestionsRequest{
			PropertyData: map[string]interface{}{"area": 54.5},
		})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("upstream failure maps to unavailable", func(t *testing.T) {
		mockClient := new(assistantMocks.MockClient)
		mockClient.On("GenerateContractorQuestions", ctx, "elektryka", mock.Anything).
			Return(nil, errors.New("connection refused"))

		service := NewChecklistService(mockClient)
		_, err := service.GenerateContractorQuestions(ctx, &dto.ContractorQuestionsRequest{
			SectionType:  "elektryka",
			PropertyData: map[string]interface{}{"year": 1978},
		})

		assert.ErrorIs(t, err, apperrors.ErrAssistantUnavailable)
	})
}
