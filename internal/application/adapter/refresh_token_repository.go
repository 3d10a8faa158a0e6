// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// RefreshTokenRepository defines the interface for refresh token
// persistence. Token strings are generated by the caller as
// cryptographically random opaque values.
type RefreshTokenRepository interface {
	// FindByToken retrieves a refresh token by its opaque token string.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Save persists a new refresh token.
	Save(ctx context.Context, token *entity.RefreshToken) error

	// Replace atomically deletes all refresh tokens for the user and
	// persists the given one in their place.
	Replace(ctx context.Context, token *entity.RefreshToken) error

	// Delete removes a refresh token by its token string.
	Delete(ctx context.Context, token string) error

	// DeleteByUser removes all refresh tokens for the given user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredBefore removes tokens whose expiry passed before the
	// given cutoff and returns the number of rows removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountByUser returns the number of stored tokens for the user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
