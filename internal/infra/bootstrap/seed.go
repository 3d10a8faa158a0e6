// Package bootstrap seeds the records the application expects at startup.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dreamwell/backend/config"
	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// defaultSettings are created on first start and editable from the admin
// console afterwards.
var defaultSettings = []struct {
	key         string
	value       string
	description string
}{
	{"app.name", "DreamWell", "Application display name"},
	{"app.logo", "/assets/logo.svg", "Path to the application logo"},
	{"app.footer.text", "Sleep well, dream deep.", "Footer text shown on every page"},
	{"emergency.helpline", "988", "Helpline number surfaced with flagged dreams"},
}

// Seeder creates the super admin account and default settings when they
// are missing. Existing records are never overwritten.
type Seeder struct {
	userRepo        adapter.UserRepository
	settingsRepo    adapter.SystemSettingsRepository
	passwordService adapter.PasswordService
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(
	userRepo adapter.UserRepository,
	settingsRepo adapter.SystemSettingsRepository,
	passwordService adapter.PasswordService,
) *Seeder {
	return &Seeder{
		userRepo:        userRepo,
		settingsRepo:    settingsRepo,
		passwordService: passwordService,
	}
}

// Run seeds the super admin account and default settings.
func (s *Seeder) Run(ctx context.Context, cfg *config.AdminConfig) error {
	if err := s.seedSuperAdmin(ctx, cfg); err != nil {
		return err
	}
	return s.seedSettings(ctx)
}

func (s *Seeder) seedSuperAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	_, err := s.userRepo.FindByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	passwordHash, err := s.passwordService.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	account := entity.NewUser("Administrator", cfg.Email, passwordHash)
	account.Role = entity.RoleSuperAdmin
	account.IsEmailVerified = true
	if err := s.userRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	slog.Info("Seeded super admin account", "email", cfg.Email)
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	for _, def := range defaultSettings {
		_, err := s.settingsRepo.FindByKey(ctx, def.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrSettingNotFound) {
			return fmt.Errorf("failed to look up setting %s: %w", def.key, err)
		}

		setting := entity.NewSystemSetting(def.key, def.value, def.description)
		if err := s.settingsRepo.Save(ctx, setting); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", def.key, err)
		}
		slog.Info("Seeded system setting", "key", def.key)
	}
	return nil
}
