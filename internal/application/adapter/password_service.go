// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes credentials and enforces the password policy.
// The same implementation backs signup, login, password reset and the
// in-account password change flow.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks a candidate password against the
	// minimum policy before it is hashed.
	ValidatePasswordStrength(password string) error
}
