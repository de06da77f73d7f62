package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses.
// Handlers call this with whatever the service layer returned; the mapping
// from error identity to status code lives only here.
func HandleAPIError(c *gin.Context, err error) {
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault(message, "Note not found")),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault(message, "Resource not found")),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeValidationFailed, orDefault(message, "Validation failed")),
		})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, orDefault(message, "Invalid request")),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
	case errors.Is(err, apperrors.ErrAssistantUnavailable):
		c.JSON(http.StatusBadGateway, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, orDefault(message, "Assistant service unavailable")),
		})
	case errors.Is(err, apperrors.ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeNotImplemented, orDefault(message, "Not implemented")),
		})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Success: false,
			Error:   dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
