package dream

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// UpdateDreamInput represents the input for editing a dream. Nil fields
// are left unchanged.
type UpdateDreamInput struct {
	Title        *string
	DreamText    *string
	Tags         []string
	MoodAtWake   *string
	SleepQuality *int
	DreamDate    *time.Time
	IsPrivate    *bool
	UserNotes    *string
}

// UpdateDreamUseCase handles dream edits, owner-checked.
type UpdateDreamUseCase struct {
	dreamRepo adapter.DreamRepository
}

// NewUpdateDreamUseCase creates a new UpdateDreamUseCase instance.
func NewUpdateDreamUseCase(dreamRepo adapter.DreamRepository) *UpdateDreamUseCase {
	return &UpdateDreamUseCase{dreamRepo: dreamRepo}
}

// Execute applies the edits to the dream if it belongs to the user.
// Editing does not re-run interpretation; the stored one stays until the
// user explicitly reinterprets.
func (uc *UpdateDreamUseCase) Execute(ctx context.Context, userID, dreamID uuid.UUID, input UpdateDreamInput) (*entity.Dream, error) {
	dream, err := uc.dreamRepo.FindByID(ctx, dreamID)
	if err != nil {
		return nil, err
	}
	if dream.UserID != userID {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeDreamNotFound,
			"dream not found",
			domainerror.ErrDreamNotFound,
		)
	}

	if input.MoodAtWake != nil && !entity.ValidMood(*input.MoodAtWake) {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeInvalidMood,
			"invalid mood value",
			domainerror.ErrInvalidMood,
		)
	}
	if input.SleepQuality != nil && (*input.SleepQuality < 1 || *input.SleepQuality > 5) {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeInvalidSleepQuality,
			"sleep quality must be between 1 and 5",
			domainerror.ErrInvalidSleepQuality,
		)
	}

	if input.Title != nil {
		dream.Title = *input.Title
	}
	if input.DreamText != nil {
		dream.DreamText = *input.DreamText
	}
	if input.Tags != nil {
		dream.Tags = input.Tags
	}
	if input.MoodAtWake != nil {
		dream.MoodAtWake = entity.Mood(*input.MoodAtWake)
	}
	if input.SleepQuality != nil {
		dream.SleepQuality = *input.SleepQuality
	}
	if input.DreamDate != nil {
		dream.DreamDate = *input.DreamDate
	}
	if input.IsPrivate != nil {
		dream.IsPrivate = *input.IsPrivate
	}
	if input.UserNotes != nil {
		dream.UserNotes = *input.UserNotes
	}
	dream.UpdatedAt = time.Now().UTC()

	if err := uc.dreamRepo.Update(ctx, dream); err != nil {
		return nil, fmt.Errorf("failed to update dream: %w", err)
	}
	return dream, nil
}
