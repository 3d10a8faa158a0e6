// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's authorization level.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Theme represents the user's preferred UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User represents an account in the DreamWell system.
//
// The email verification and password reset token fields come in pairs
// (token + expiry) that are either both unset or both set. All mutations
// of those pairs go through the methods below so the invariant is
// enforced in one place.
type User struct {
	ID                      uuid.UUID
	Name                    string
	Email                   string
	PasswordHash            string
	Role                    Role
	IsActive                bool
	IsEmailVerified         bool
	EmailVerificationToken  *string
	EmailVerificationExpiry *time.Time
	PasswordResetToken      *string
	PasswordResetExpiry     *time.Time
	Theme                   Theme
	NotificationsEnabled    bool
	Language                string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewUser creates a new User with default values.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                   uuid.New(),
		Name:                 name,
		Email:                email,
		PasswordHash:         passwordHash,
		Role:                 RoleUser,
		IsActive:             true,
		IsEmailVerified:      false,
		Theme:                ThemeLight,
		NotificationsEnabled: true,
		Language:             "en",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// SetVerificationToken sets the email verification token pair.
func (u *User) SetVerificationToken(token string, expiry time.Time) {
	u.EmailVerificationToken = &token
	u.EmailVerificationExpiry = &expiry
	u.UpdatedAt = time.Now().UTC()
}

// MarkEmailVerified marks the email as verified and clears the
// verification token pair.
func (u *User) MarkEmailVerified() {
	u.IsEmailVerified = true
	u.EmailVerificationToken = nil
	u.EmailVerificationExpiry = nil
	u.UpdatedAt = time.Now().UTC()
}

// VerificationTokenExpired reports whether the verification token expiry
// has passed.
func (u *User) VerificationTokenExpired(now time.Time) bool {
	return u.EmailVerificationExpiry != nil && now.After(*u.EmailVerificationExpiry)
}

// SetResetToken sets the password reset token pair.
func (u *User) SetResetToken(token string, expiry time.Time) {
	u.PasswordResetToken = &token
	u.PasswordResetExpiry = &expiry
	u.UpdatedAt = time.Now().UTC()
}

// ApplyPasswordReset stores the new password hash and clears the reset
// token pair.
func (u *User) ApplyPasswordReset(passwordHash string) {
	u.PasswordHash = passwordHash
	u.PasswordResetToken = nil
	u.PasswordResetExpiry = nil
	u.UpdatedAt = time.Now().UTC()
}

// ResetTokenExpired reports whether the reset token expiry has passed.
func (u *User) ResetTokenExpired(now time.Time) bool {
	return u.PasswordResetExpiry != nil && now.After(*u.PasswordResetExpiry)
}

// IsAdmin reports whether the user holds an administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
