// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// AccessClaims represents the identity claims carried by an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for stateless access token
// operations. Access tokens are self-contained signed claims verified by
// recomputation; no storage lookup is involved, so an issued token cannot
// be revoked before its natural expiry.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken verifies the signature and expiry of an access
	// token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*AccessClaims, error)
}
