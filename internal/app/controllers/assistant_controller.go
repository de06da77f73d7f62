package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/app/services"
	"github.com/teczka-budowlanca/backend/internal/middleware"
)

// AssistantController handles AI-generated inspection checklists and
// contractor questions.
type AssistantController struct {
	checklistService services.ChecklistService
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(checklistService services.ChecklistService) *AssistantController {
	return &AssistantController{checklistService: checklistService}
}

// GenerateInspectionChecklist godoc
// @Summary Generate an inspection checklist
// @Description Generate a pre-purchase apartment inspection checklist from property data
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.InspectionChecklistRequest true "Property data"
// @Success 200 {object} dto.APIResponse{data=dto.ChecklistResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 502 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /ai/inspection-checklist [post]
func (c *AssistantController) GenerateInspectionChecklist(ctx *gin.Context) {
	if _, ok := requireUserID(ctx); !ok {
		return
	}

	var req dto.InspectionChecklistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	checklist, err := c.checklistService.GenerateInspectionChecklist(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(checklist))
}

// GenerateContractorQuestions godoc
// @Summary Generate contractor questions
// @Description Generate questions to ask a contractor about a renovation section
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ContractorQuestionsRequest true "Section type and property data"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionsResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 502 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /ai/questions [post]
func (c *AssistantController) GenerateContractorQuestions(ctx *gin.Context) {
	if _, ok := requireUserID(ctx); !ok {
		return
	}

	var req dto.ContractorQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	questions, err := c.checklistService.GenerateContractorQuestions(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(questions))
}
