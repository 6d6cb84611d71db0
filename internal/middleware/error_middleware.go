package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
	"github.com/arnav/teamforge/internal/pkg/logger"
)

// HandleAPIError maps application sentinels to HTTP responses. Every
// matching-engine failure is an expected, client-correctable condition and
// is reported as such; only unrecognized errors become a 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrTeamNotFound,
		apperrors.ErrChoiceNotFound,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrAlreadyTeamed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyTeamed, err.Error())))

	case errors.Is(err, apperrors.ErrTargetAlreadyTeamed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTargetAlreadyTeamed, err.Error())))

	case errors.Is(err, apperrors.ErrNoAttemptsLeft):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoAttemptsLeft, err.Error())))

	case errors.Is(err, apperrors.ErrSelectionClosed):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSelectionClosed, err.Error())))

	case errors.Is(err, apperrors.ErrCrossBatch):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCrossBatch, err.Error())))

	case apperrors.Is(err, apperrors.ErrInvalidChoices,
		apperrors.ErrSelfSelection,
		apperrors.ErrInvalidTeamSize,
		apperrors.ErrInvalidBatch,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
