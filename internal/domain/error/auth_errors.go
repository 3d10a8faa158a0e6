// Package error defines domain-specific errors for the DreamWell application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to sign up with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	// It deliberately covers both "no such account" and "wrong password"
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when logging into a deactivated account.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrTokenNotFound is returned when a refresh, verification, or reset
	// token does not exist.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrInvalidToken is returned when an access token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = errors.New("operation not permitted")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Signup errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeAccountDisabled    AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken  AuthErrorCode = "AUTH-030001"
	ErrCodeTokenExpired  AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken  AuthErrorCode = "AUTH-030003"
	ErrCodeTokenNotFound AuthErrorCode = "AUTH-030004"

	// Password reset and verification errors (04XXXX)
	ErrCodeResetTokenNotFound        AuthErrorCode = "AUTH-040001"
	ErrCodeResetTokenExpired         AuthErrorCode = "AUTH-040002"
	ErrCodeVerificationTokenNotFound AuthErrorCode = "AUTH-040003"
	ErrCodeVerificationTokenExpired  AuthErrorCode = "AUTH-040004"

	// Authorization errors (05XXXX)
	ErrCodeForbidden AuthErrorCode = "AUTH-050001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
