// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// Lookups return domain "not found" errors rather than nil sentinels.
type UserRepository interface {
	// Create creates a new user in the database. A duplicate email fails
	// with ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByVerificationToken retrieves a user by their email verification
	// token. An unknown token fails with ErrTokenNotFound.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// FindByResetToken retrieves a user by their password reset token.
	// An unknown token fails with ErrTokenNotFound.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Update replaces the stored record for an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll retrieves all users ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountActive returns the number of active users.
	CountActive(ctx context.Context) (int64, error)
}
