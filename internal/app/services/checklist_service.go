package services

import (
	"context"
	"fmt"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/assistant"
	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
)

// ChecklistService produces AI-generated inspection checklists and contractor
// questions. Upstream failures degrade to an error response, never a crash.
type ChecklistService interface {
	GenerateInspectionChecklist(ctx context.Context, req *dto.InspectionChecklistRequest) (*dto.ChecklistResponse, error)
	GenerateContractorQuestions(ctx context.Context, req *dto.ContractorQuestionsRequest) (*dto.QuestionsResponse, error)
}

type checklistServiceImpl struct {
	client assistant.Client
}

// NewChecklistService creates a new ChecklistService
func NewChecklistService(client assistant.Client) ChecklistService {
	return &checklistServiceImpl{client: client}
}

func (s *checklistServiceImpl) GenerateInspectionChecklist(ctx context.Context, req *dto.InspectionChecklistRequest) (*dto.ChecklistResponse, error) {
	// Floor is not checked here: zero is a valid value (ground floor) and
	// presence is enforced at the binding layer.
	if req.Area <= 0 || req.Year <= 0 {
		return nil, apperrors.NewValidationError("missing required fields: area, year")
	}

	items, err := s.client.GenerateInspectionChecklist(ctx, assistant.PropertyData{
		Area:  req.Area,
		Year:  req.Year,
		Floor: req.Floor,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error generating inspection checklist")
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrAssistantUnavailable,
			Message: fmt.Sprintf("generate inspection checklist error: %v", err),
		}
	}

	return &dto.ChecklistResponse{Checklist: items}, nil
}

func (s *checklistServiceImpl) GenerateContractorQuestions(ctx context.Context, req *dto.ContractorQuestionsRequest) (*dto.QuestionsResponse, error) {
	if req.SectionType == "" || len(req.PropertyData) == 0 {
		return nil, apperrors.NewValidationError("missing required fields: sectionType, propertyData")
	}

	questions, err := s.client.GenerateContractorQuestions(ctx, req.SectionType, req.PropertyData)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating contractor questions")
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrAssistantUnavailable,
			Message: fmt.Sprintf("generate contractor questions error: %v", err),
		}
	}

	return &dto.QuestionsResponse{Questions: questions}, nil
}
