package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	secret := "test-secret-at-least-32-characters"
	user := entity.NewUser("Mira", "mira@example.com", "hash")
	user.Role = entity.RoleAdmin

	t.Run("generate and validate roundtrip", func(t *testing.T) {
		svc := NewTokenService(secret, 15*time.Minute)

		token, err := svc.GenerateAccessToken(context.Background(), user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != entity.RoleAdmin {
			t.Errorf("unexpected claims: %+v", claims)
		}
		if time.Until(claims.ExpiresAt) > 15*time.Minute {
			t.Error("expiry further out than configured")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		svc := NewTokenService(secret, -time.Minute)

		token, err := svc.GenerateAccessToken(context.Background(), user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = svc.ValidateAccessToken(context.Background(), token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeTokenExpired {
			t.Fatalf("expected expired token error, got %v", err)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("another-secret-also-32-characters!", 15*time.Minute)
		token, err := other.GenerateAccessToken(context.Background(), user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		svc := NewTokenService(secret, 15*time.Minute)
		_, err = svc.ValidateAccessToken(context.Background(), token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := NewTokenService(secret, 15*time.Minute)
		if _, err := svc.ValidateAccessToken(context.Background(), "not.a.jwt"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
