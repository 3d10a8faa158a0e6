// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

const (
	// verificationTokenTTL is how long an email verification link stays valid.
	verificationTokenTTL = 24 * time.Hour

	// resetTokenTTL is how long a password reset link stays valid.
	resetTokenTTL = 1 * time.Hour

	// opaqueTokenBytes is the entropy of generated opaque tokens.
	opaqueTokenBytes = 32
)

// generateOpaqueToken returns a cryptographically random hex string.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// issueRefreshToken creates a fresh refresh token for the user,
// superseding all previously stored ones. The record is persisted before
// the token string is returned.
func issueRefreshToken(ctx context.Context, repo adapter.RefreshTokenRepository, userID uuid.UUID, ttl time.Duration) (string, error) {
	token, err := generateOpaqueToken()
	if err != nil {
		return "", err
	}

	refreshToken := entity.NewRefreshToken(userID, token, time.Now().UTC().Add(ttl))
	if err := repo.Replace(ctx, refreshToken); err != nil {
		return "", fmt.Errorf("failed to save refresh token: %w", err)
	}

	return token, nil
}
