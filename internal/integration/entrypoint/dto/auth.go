package dto

import (
	"time"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// SignupRequest represents the request body for account signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest represents the request body for requesting a
// password reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the request body for completing a
// password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents the response for signup and login.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserResponse represents the user data in API responses. Credential
// and token columns never leave the server.
type UserResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Role                 string    `json:"role"`
	IsActive             bool      `json:"isActive"`
	IsEmailVerified      bool      `json:"isEmailVerified"`
	Theme                string    `json:"theme"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	Language             string    `json:"language"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                   user.ID.String(),
		Name:                 user.Name,
		Email:                user.Email,
		Role:                 string(user.Role),
		IsActive:             user.IsActive,
		IsEmailVerified:      user.IsEmailVerified,
		Theme:                string(user.Theme),
		NotificationsEnabled: user.NotificationsEnabled,
		Language:             user.Language,
		CreatedAt:            user.CreatedAt,
	}
}
