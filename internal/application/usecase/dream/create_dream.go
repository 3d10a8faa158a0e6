// Package dream contains dream journal use cases.
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

// CreateDreamInput represents the input for logging a dream.
type CreateDreamInput struct {
	Title        string
	DreamText    string
	Tags         []string
	MoodAtWake   string
	SleepQuality int
	DreamDate    time.Time
	IsPrivate    *bool
	UserNotes    string
}

// CreateDreamOutput represents the result of logging a dream.
type CreateDreamOutput struct {
	Dream          *entity.Dream
	Interpretation *entity.Interpretation
}

// CreateDreamUseCase handles dream creation and triggers interpretation.
type CreateDreamUseCase struct {
	dreamRepo   adapter.DreamRepository
	interpreter *InterpretDreamUseCase
}

// NewCreateDreamUseCase creates a new CreateDreamUseCase instance.
func NewCreateDreamUseCase(dreamRepo adapter.DreamRepository, interpreter *InterpretDreamUseCase) *CreateDreamUseCase {
	return &CreateDreamUseCase{
		dreamRepo:   dreamRepo,
		interpreter: interpreter,
	}
}

// Execute persists the dream and then runs AI interpretation. An
// interpretation failure does not fail the create; the dream is kept and
// the error is logged by the interpret use case.
func (uc *CreateDreamUseCase) Execute(ctx context.Context, userID uuid.UUID, input CreateDreamInput) (*CreateDreamOutput, error) {
	if err := validateDreamInput(input.MoodAtWake, input.SleepQuality); err != nil {
		return nil, err
	}

	dream := entity.NewDream(userID, input.Title, input.DreamText, entity.Mood(input.MoodAtWake), input.SleepQuality, input.DreamDate)
	dream.Tags = input.Tags
	dream.UserNotes = input.UserNotes
	if input.IsPrivate != nil {
		dream.IsPrivate = *input.IsPrivate
	}

	if err := uc.dreamRepo.Create(ctx, dream); err != nil {
		return nil, fmt.Errorf("failed to create dream: %w", err)
	}

	interpretation := uc.interpreter.TryInterpret(ctx, dream)

	return &CreateDreamOutput{
		Dream:          dream,
		Interpretation: interpretation,
	}, nil
}

func validateDreamInput(mood string, sleepQuality int) error {
	if !entity.ValidMood(mood) {
		return domainerror.NewDreamError(
			domainerror.ErrCodeInvalidMood,
			"invalid mood value",
			domainerror.ErrInvalidMood,
		)
	}
	if sleepQuality < 1 || sleepQuality > 5 {
		return domainerror.NewDreamError(
			domainerror.ErrCodeInvalidSleepQuality,
			"sleep quality must be between 1 and 5",
			domainerror.ErrInvalidSleepQuality,
		)
	}
	return nil
}
