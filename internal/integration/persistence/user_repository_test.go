package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	t.Run("create and find by email", func(t *testing.T) {
		user := entity.NewUser("Mira", "mira@example.com", "hash")
		if err := repo.Create(ctx(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByEmail(ctx(), "mira@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID || found.Role != entity.RoleUser {
			t.Errorf("unexpected user: %+v", found)
		}
		if !found.IsActive || found.IsEmailVerified {
			t.Error("expected a new user to be active and unverified")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := entity.NewUser("Other", "mira@example.com", "hash")
		if err := repo.Create(ctx(), dup); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected duplicate email error, got %v", err)
		}
	})

	t.Run("find by verification token and clear pair", func(t *testing.T) {
		user := entity.NewUser("Ben", "ben@example.com", "hash")
		user.SetVerificationToken("verify-123", time.Now().UTC().Add(24*time.Hour))
		if err := repo.Create(ctx(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByVerificationToken(ctx(), "verify-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found.MarkEmailVerified()
		if err := repo.Update(ctx(), found); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByVerificationToken(ctx(), "verify-123"); !errors.Is(err, domainerror.ErrTokenNotFound) {
			t.Fatalf("expected the token to be cleared, got %v", err)
		}
		again, err := repo.FindByEmail(ctx(), "ben@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.IsEmailVerified || again.EmailVerificationToken != nil || again.EmailVerificationExpiry != nil {
			t.Error("expected the stored token pair to be null after verification")
		}
	})

	t.Run("find by reset token", func(t *testing.T) {
		user := entity.NewUser("Ana", "ana@example.com", "hash")
		user.SetResetToken("reset-456", time.Now().UTC().Add(time.Hour))
		if err := repo.Create(ctx(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByResetToken(ctx(), "reset-456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Email != "ana@example.com" {
			t.Errorf("unexpected user %q", found.Email)
		}

		if _, err := repo.FindByResetToken(ctx(), "no-such"); !errors.Is(err, domainerror.ErrTokenNotFound) {
			t.Fatalf("expected token not found, got %v", err)
		}
	})

	t.Run("counts", func(t *testing.T) {
		inactive := entity.NewUser("Off", "off@example.com", "hash")
		inactive.IsActive = false
		if err := repo.Create(ctx(), inactive); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		total, err := repo.Count(ctx())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		active, err := repo.CountActive(ctx())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 4 || active != 3 {
			t.Errorf("expected 4 total and 3 active, got %d and %d", total, active)
		}
	})

	t.Run("delete", func(t *testing.T) {
		user := entity.NewUser("Gone", "gone@example.com", "hash")
		if err := repo.Create(ctx(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx(), user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx(), user.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected user not found, got %v", err)
		}
	})
}

func TestRefreshTokenRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewRefreshTokenRepository(db)
	user := entity.NewUser("Mira", "mira@example.com", "hash")
	if err := NewUserRepository(db).Create(ctx(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiry := time.Now().UTC().Add(7 * 24 * time.Hour)

	t.Run("save and find", func(t *testing.T) {
		token := entity.NewRefreshToken(user.ID, "opaque-1", expiry)
		if err := repo.Save(ctx(), token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByToken(ctx(), "opaque-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.UserID != user.ID {
			t.Error("unexpected owner")
		}
	})

	t.Run("replace keeps exactly one token per user", func(t *testing.T) {
		replacement := entity.NewRefreshToken(user.ID, "opaque-2", expiry)
		if err := repo.Replace(ctx(), replacement); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := repo.CountByUser(ctx(), user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 token, got %d", count)
		}
		if _, err := repo.FindByToken(ctx(), "opaque-1"); !errors.Is(err, domainerror.ErrTokenNotFound) {
			t.Fatalf("expected the old token to be gone, got %v", err)
		}
	})

	t.Run("delete expired before cutoff", func(t *testing.T) {
		expired := entity.NewRefreshToken(user.ID, "opaque-old", time.Now().UTC().Add(-time.Hour))
		if err := repo.Save(ctx(), expired); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		removed, err := repo.DeleteExpiredBefore(ctx(), time.Now().UTC())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 1 {
			t.Errorf("expected 1 removed token, got %d", removed)
		}
		if _, err := repo.FindByToken(ctx(), "opaque-2"); err != nil {
			t.Fatalf("expected the live token to survive: %v", err)
		}
	})

	t.Run("delete by user", func(t *testing.T) {
		if err := repo.DeleteByUser(ctx(), user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count, err := repo.CountByUser(ctx(), user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no tokens, got %d", count)
		}
	})
}
