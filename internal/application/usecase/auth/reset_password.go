// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dreamwell/backend/internal/application/adapter"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute replaces the stored credential and clears the reset token pair.
// Existing refresh tokens for the account are left untouched.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	user, err := uc.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerror.ErrTokenNotFound) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeResetTokenNotFound,
				"invalid password reset token",
				domainerror.ErrTokenNotFound,
			)
		}
		return fmt.Errorf("failed to find user by reset token: %w", err)
	}

	if user.ResetTokenExpired(time.Now().UTC()) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeResetTokenExpired,
			"password reset token has expired",
			domainerror.ErrTokenExpired,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.ApplyPasswordReset(passwordHash)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	return nil
}
