// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dreamwell/backend/internal/application/adapter"
)

const (
	// bcryptCost is the work factor used for new password hashes.
	bcryptCost = 12
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
	// maxPasswordLength caps input at bcrypt's 72-byte limit; bytes
	// beyond it would be silently ignored by the hash.
	maxPasswordLength = 72
)

// passwordService implements adapter.PasswordService with bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength checks the candidate password against the
// length policy.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	if len(password) > maxPasswordLength {
		return errors.New("password must be at most 72 characters long")
	}
	return nil
}
