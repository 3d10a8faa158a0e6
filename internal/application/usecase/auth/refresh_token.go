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

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenUseCase handles token refresh logic.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	refreshRepo  adapter.RefreshTokenRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(
	userRepo adapter.UserRepository,
	refreshRepo adapter.RefreshTokenRepository,
	tokenService adapter.TokenService,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		refreshRepo:  refreshRepo,
		tokenService: tokenService,
	}
}

// Execute exchanges a refresh token for a new access token. The refresh
// token string itself is returned unchanged: tokens are not rotated on
// use. An expired token is deleted the first time it is seen, so a second
// attempt with the same string reports it as missing rather than expired.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	stored, err := uc.refreshRepo.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, domainerror.ErrTokenNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeTokenNotFound,
				"invalid refresh token",
				domainerror.ErrTokenNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	if stored.IsExpired(time.Now().UTC()) {
		if err := uc.refreshRepo.Delete(ctx, stored.Token); err != nil {
			return nil, fmt.Errorf("failed to delete expired refresh token: %w", err)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTokenExpired,
			"refresh token has expired",
			domainerror.ErrTokenExpired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find token owner: %w", err)
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: stored.Token,
		User:         user,
	}, nil
}
