// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	appBaseURL   string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Execute generates a reset token for the account and queues the reset
// email. The token is persisted before the email is queued; a queueing
// failure is logged, never surfaced.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) error {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	resetToken, err := generateOpaqueToken()
	if err != nil {
		return err
	}

	user.SetResetToken(resetToken, time.Now().UTC().Add(resetTokenTTL))
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.queueResetEmail(ctx, user, resetToken)
	return nil
}

func (uc *ForgotPasswordUseCase) queueResetEmail(ctx context.Context, user *entity.User, token string) {
	if uc.emailService == nil {
		slog.Info("Password reset token generated (email service not configured)",
			"userID", user.ID,
			"email", user.Email,
		)
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, token)
	err := uc.emailService.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		ResetURL:  resetURL,
		ExpiresIn: "1 hour",
	})
	if err != nil {
		slog.Error("Failed to queue password reset email", "error", err, "userID", user.ID)
	}
}
