package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/app/services"
	"github.com/teczka-budowlanca/backend/internal/middleware"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/helpers"
)

// NoteController handles note operations for the authenticated user.
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// requireUserID reads the authenticated user from the context or aborts 401.
func requireUserID(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return "", false
	}
	return userID, true
}

// CreateNote godoc
// @Summary Create a note
// @Description Create a new draft note in a project section
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateNoteRequest true "Note data"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	note, err := c.noteService.CreateNote(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(note))
}

// GetNotesBySection godoc
// @Summary List notes in a section
// @Description Get one page of the user's notes in a project section, newest first
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param projectId path string true "Project ID"
// @Param sectionId path string true "Section ID"
// @Param limit query int false "Page size (default: 50, max: 200)"
// @Param offset query int false "Page offset (default: 0)"
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{projectId}/sections/{sectionId}/notes [get]
func (c *NoteController) GetNotesBySection(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	projectID := ctx.Param("projectId")
	sectionID := ctx.Param("sectionId")
	limit, offset := helpers.ParseListParams(ctx)

	notes, err := c.noteService.GetNotesBySection(ctx, userID, projectID, sectionID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notes))
}

// GetNoteByID godoc
// @Summary Get a note
// @Description Get a single note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{noteId} [get]
func (c *NoteController) GetNoteByID(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	note, err := c.noteService.GetNoteByID(ctx, userID, ctx.Param("noteId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note))
}

// UpdateNote godoc
// @Summary Update a note
// @Description Apply a partial update to a note; absent fields keep their value
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{noteId} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	note, err := c.noteService.UpdateNote(ctx, userID, ctx.Param("noteId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note))
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Soft-delete a note; repeating the delete is not an error
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{noteId} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.noteService.DeleteNote(ctx, userID, ctx.Param("noteId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Note deleted"}))
}

// UploadImage godoc
// @Summary Attach an image to a note
// @Description Not yet available; ownership of the note is still verified
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "Note ID"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 501 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{noteId}/images [post]
func (c *NoteController) UploadImage(ctx *gin.Context) {
	c.uploadStub(ctx, "Image upload is not available yet")
}

// UploadAudio godoc
// @Summary Attach an audio recording to a note
// @Description Not yet available; ownership of the note is still verified
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "Note ID"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 501 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{noteId}/audio [post]
func (c *NoteController) UploadAudio(ctx *gin.Context) {
	c.uploadStub(ctx, "Audio upload is not available yet")
}

// uploadStub verifies the note exists and belongs to the caller, then reports
// that the attachment pipeline is not built.
func (c *NoteController) uploadStub(ctx *gin.Context, message string) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if _, err := c.noteService.GetNoteByID(ctx, userID, ctx.Param("noteId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.HandleAPIError(ctx, apperrors.NewNotImplementedError(message))
}
