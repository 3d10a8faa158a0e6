package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
	"github.com/dreamwell/backend/internal/integration/entrypoint/middleware"
)

// respondError translates a domain error into an HTTP response.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthCode(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var dreamErr *domainerror.DreamError
	if errors.As(err, &dreamErr) {
		ctx.JSON(statusForDreamCode(dreamErr.Code), dto.ErrorResponse{
			Error: dreamErr.Message,
			Code:  string(dreamErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrUserNotFound),
		errors.Is(err, domainerror.ErrTicketNotFound),
		errors.Is(err, domainerror.ErrSettingNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrInvalidTicketStatus):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusForAuthCode maps auth error codes to HTTP status codes. Refresh
// token problems are unauthorized; verification and reset token problems
// are plain bad requests because the caller is not logged in yet.
func statusForAuthCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeResetTokenNotFound,
		domainerror.ErrCodeResetTokenExpired,
		domainerror.ErrCodeVerificationTokenNotFound,
		domainerror.ErrCodeVerificationTokenExpired:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeTokenExpired,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeTokenNotFound:
		return http.StatusUnauthorized
	case domainerror.ErrCodeAccountDisabled,
		domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusForDreamCode maps dream journal error codes to HTTP status codes.
func statusForDreamCode(code domainerror.DreamErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMood,
		domainerror.ErrCodeInvalidSleepQuality:
		return http.StatusBadRequest
	case domainerror.ErrCodeDreamNotFound,
		domainerror.ErrCodeMoodEntryNotFound,
		domainerror.ErrCodeInterpretationNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID extracts the authenticated user ID set by the auth
// middleware, writing an error response when it is absent.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// parseIDParam parses a UUID path parameter, writing an error response
// when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}
