// Package admin contains administrative console use cases.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// ManageUsersUseCase lists users and toggles their account state.
type ManageUsersUseCase struct {
	userRepo         adapter.UserRepository
	refreshTokenRepo adapter.RefreshTokenRepository
	dreamRepo        adapter.DreamRepository
	moodRepo         adapter.MoodEntryRepository
}

// NewManageUsersUseCase creates a new ManageUsersUseCase instance.
func NewManageUsersUseCase(
	userRepo adapter.UserRepository,
	refreshTokenRepo adapter.RefreshTokenRepository,
	dreamRepo adapter.DreamRepository,
	moodRepo adapter.MoodEntryRepository,
) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		dreamRepo:        dreamRepo,
		moodRepo:         moodRepo,
	}
}

// ListUsers returns every account ordered by creation time.
func (uc *ManageUsersUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.FindAll(ctx)
}

// GetUser returns a single account by id.
func (uc *ManageUsersUseCase) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}

// UserActivity summarizes a user's journal activity for the console.
type UserActivity struct {
	User        *entity.User
	DreamCount  int64
	MoodEntries int
	LastDreamAt *time.Time
}

// GetUserActivity returns the account together with journal counters.
func (uc *ManageUsersUseCase) GetUserActivity(ctx context.Context, userID uuid.UUID) (*UserActivity, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dreamCount, err := uc.dreamRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	moods, err := uc.moodRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity := &UserActivity{
		User:        user,
		DreamCount:  dreamCount,
		MoodEntries: len(moods),
	}
	dreams, err := uc.dreamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(dreams) > 0 {
		activity.LastDreamAt = &dreams[0].DreamDate
	}
	return activity, nil
}

// ToggleUserStatus flips the account between active and deactivated.
// Deactivation revokes the user's refresh tokens so the session ends at
// the next access token expiry. Administrative accounts cannot be
// deactivated by other admins.
func (uc *ManageUsersUseCase) ToggleUserStatus(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleSuperAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbidden,
			"cannot change the status of a super admin account",
			domainerror.ErrForbidden,
		)
	}

	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if !user.IsActive {
		if err := uc.refreshTokenRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
	}
	return user, nil
}

// FlaggedDreamsUseCase lists dreams flagged by the AI analysis for
// review.
type FlaggedDreamsUseCase struct {
	dreamRepo adapter.DreamRepository
}

// NewFlaggedDreamsUseCase creates a new FlaggedDreamsUseCase instance.
func NewFlaggedDreamsUseCase(dreamRepo adapter.DreamRepository) *FlaggedDreamsUseCase {
	return &FlaggedDreamsUseCase{dreamRepo: dreamRepo}
}

// Execute returns all flagged dreams.
func (uc *FlaggedDreamsUseCase) Execute(ctx context.Context) ([]*entity.Dream, error) {
	return uc.dreamRepo.FindFlagged(ctx)
}

// SystemSettingsUseCase reads and writes application settings.
type SystemSettingsUseCase struct {
	settingsRepo adapter.SystemSettingsRepository
}

// NewSystemSettingsUseCase creates a new SystemSettingsUseCase instance.
func NewSystemSettingsUseCase(settingsRepo adapter.SystemSettingsRepository) *SystemSettingsUseCase {
	return &SystemSettingsUseCase{settingsRepo: settingsRepo}
}

// Get returns the setting for a key.
func (uc *SystemSettingsUseCase) Get(ctx context.Context, key string) (*entity.SystemSetting, error) {
	return uc.settingsRepo.FindByKey(ctx, key)
}

// Update sets the value for a key, creating the setting if absent.
func (uc *SystemSettingsUseCase) Update(ctx context.Context, key, value string) (*entity.SystemSetting, error) {
	setting, err := uc.settingsRepo.FindByKey(ctx, key)
	if err != nil {
		setting = entity.NewSystemSetting(key, value, "")
	} else {
		setting.Value = value
		setting.UpdatedAt = time.Now().UTC()
	}
	if err := uc.settingsRepo.Save(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}
	return setting, nil
}
