package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
	"github.com/edudata/scedapi/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto the uniform error
// envelope. Unknown errors never leak their text to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
		return
	case errors.Is(err, apperrors.ErrEmptyCSV):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidUpload, apperrors.ErrEmptyCSV.Error())))
		return
	case errors.Is(err, apperrors.ErrInvalidUpload):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidUpload, err.Error())))
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	}
}
