// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// LoginInput represents the input for user login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the output of user login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUseCase handles user login logic.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	refreshRepo     adapter.RefreshTokenRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	refreshTTL      time.Duration
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	refreshRepo adapter.RefreshTokenRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	refreshTTL time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		refreshRepo:     refreshRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		refreshTTL:      refreshTTL,
	}
}

// Execute performs the user login. An unknown email and a wrong password
// surface the same error so accounts cannot be enumerated. Login is gated
// on the account being active, not on email verification.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountDisabled,
			"account is deactivated",
			domainerror.ErrAccountDisabled,
		)
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := issueRefreshToken(ctx, uc.refreshRepo, user.ID, uc.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
