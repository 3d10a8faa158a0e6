// Package user contains profile-related use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// GetProfileUseCase retrieves the caller's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute returns the profile of the given user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}

// UpdateProfileInput represents the updatable profile subset. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	Name                 *string
	Theme                *string
	Language             *string
	NotificationsEnabled *bool
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the given subset to the caller's profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Theme != nil {
		user.Theme = entity.Theme(*input.Theme)
	}
	if input.Language != nil {
		user.Language = *input.Language
	}
	if input.NotificationsEnabled != nil {
		user.NotificationsEnabled = *input.NotificationsEnabled
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
