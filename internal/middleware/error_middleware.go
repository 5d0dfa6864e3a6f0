package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Order matters: the first matching sentinel wins
var errorMappings = []errorMapping{
	{apperrors.ErrBackendRequired, http.StatusServiceUnavailable, dto.ErrorCodeBackendRequired, "This operation needs a live database"},
	{apperrors.ErrStorageNotConfigured, http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "File storage is not configured"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"},
	{apperrors.ErrInvalidFormat, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token format"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrNothingToUndo, http.StatusConflict, dto.ErrorCodeConflict, "Nothing to undo"},
	{apperrors.ErrNothingToRedo, http.StatusConflict, dto.ErrorCodeConflict, "Nothing to redo"},
	{apperrors.ErrNoDraft, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No draft in progress"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email"},
	{apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password"},
	{apperrors.ErrInvalidStatusChange, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid status"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrUnknownColumn, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Unknown field"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, dto.NewErrorResponse(dto.NewErrorDetail(m.code, apperrors.MessageOf(err, m.message))))
			return
		}
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical),
	))
}
