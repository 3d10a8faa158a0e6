package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents an opaque refresh token stored server-side.
// At most one live token exists per user; issuing a new one supersedes
// all previous tokens for that user.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewRefreshToken creates a refresh token for the given user.
func NewRefreshToken(userID uuid.UUID, token string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

// IsExpired reports whether the token's expiry has passed.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
