package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/user"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
)

// UserController handles profile endpoints for the authenticated user.
type UserController struct {
	getProfileUseCase     *user.GetProfileUseCase
	updateProfileUseCase  *user.UpdateProfileUseCase
	changePasswordUseCase *user.ChangePasswordUseCase
	deleteAccountUseCase  *user.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	changePasswordUseCase *user.ChangePasswordUseCase,
	deleteAccountUseCase *user.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.getProfileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}

// UpdateProfile handles PUT /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := user.UpdateProfileInput{
		Name:                 req.Name,
		Theme:                req.Theme,
		Language:             req.Language,
		NotificationsEnabled: req.NotificationsEnabled,
	}

	profile, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}

// ChangePassword handles PUT /users/me/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := user.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := c.changePasswordUseCase.Execute(ctx.Request.Context(), userID, input); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Password changed successfully",
	})
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Account deleted",
	})
}
