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

// VerifyEmailInput represents the input for email verification.
type VerifyEmailInput struct {
	Token string
}

// VerifyEmailUseCase handles email verification logic.
type VerifyEmailUseCase struct {
	userRepo adapter.UserRepository
}

// NewVerifyEmailUseCase creates a new VerifyEmailUseCase instance.
func NewVerifyEmailUseCase(userRepo adapter.UserRepository) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo: userRepo,
	}
}

// Execute marks the account as verified and clears the verification
// token pair. A consumed token cannot be replayed: the lookup fails once
// the pair is cleared.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, input VerifyEmailInput) error {
	user, err := uc.userRepo.FindByVerificationToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerror.ErrTokenNotFound) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeVerificationTokenNotFound,
				"invalid verification token",
				domainerror.ErrTokenNotFound,
			)
		}
		return fmt.Errorf("failed to find user by verification token: %w", err)
	}

	if user.VerificationTokenExpired(time.Now().UTC()) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeVerificationTokenExpired,
			"verification token has expired",
			domainerror.ErrTokenExpired,
		)
	}

	user.MarkEmailVerified()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
