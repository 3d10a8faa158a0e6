// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// SignupInput represents the input for account signup.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SignupOutput represents the output of account signup.
type SignupOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SignupUseCase handles account signup logic.
type SignupUseCase struct {
	userRepo        adapter.UserRepository
	refreshRepo     adapter.RefreshTokenRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
	appBaseURL      string
	refreshTTL      time.Duration
}

// NewSignupUseCase creates a new SignupUseCase instance.
func NewSignupUseCase(
	userRepo adapter.UserRepository,
	refreshRepo adapter.RefreshTokenRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	appBaseURL string,
	refreshTTL time.Duration,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:        userRepo,
		refreshRepo:     refreshRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
		appBaseURL:      appBaseURL,
		refreshTTL:      refreshTTL,
	}
}

// Execute performs the account signup.
func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Name, input.Email, passwordHash)

	verificationToken, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}
	user.SetVerificationToken(verificationToken, time.Now().UTC().Add(verificationTokenTTL))

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Delivery is best-effort: a queueing failure must never fail signup.
	uc.queueVerificationEmail(ctx, user, verificationToken)

	accessToken, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := issueRefreshToken(ctx, uc.refreshRepo, user.ID, uc.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &SignupOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (uc *SignupUseCase) queueVerificationEmail(ctx context.Context, user *entity.User, token string) {
	if uc.emailService == nil {
		slog.Info("Verification token generated (email service not configured)",
			"userID", user.ID,
			"email", user.Email,
		)
		return
	}

	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", uc.appBaseURL, token)
	err := uc.emailService.QueueVerificationEmail(ctx, adapter.QueueVerificationInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		VerifyURL: verifyURL,
		ExpiresIn: "24 hours",
	})
	if err != nil {
		slog.Error("Failed to queue verification email", "error", err, "userID", user.ID)
	}
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
