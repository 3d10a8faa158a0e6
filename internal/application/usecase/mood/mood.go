// Package mood contains daily mood log use cases.
package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// LogMoodInput represents the input for logging a mood.
type LogMoodInput struct {
	EntryDate time.Time
	Mood      string
	Notes     string
	Triggers  string
}

// LogMoodUseCase records the user's mood for a calendar date. A second
// log for the same date overwrites the first one.
type LogMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewLogMoodUseCase creates a new LogMoodUseCase instance.
func NewLogMoodUseCase(moodRepo adapter.MoodEntryRepository) *LogMoodUseCase {
	return &LogMoodUseCase{moodRepo: moodRepo}
}

// Execute upserts the mood entry for the given date.
func (uc *LogMoodUseCase) Execute(ctx context.Context, userID uuid.UUID, input LogMoodInput) (*entity.MoodEntry, error) {
	if !entity.ValidMood(input.Mood) {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeInvalidMood,
			"invalid mood value",
			domainerror.ErrInvalidMood,
		)
	}

	date := truncateToDay(input.EntryDate)

	existing, err := uc.moodRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil && !errors.Is(err, domainerror.ErrMoodEntryNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Mood = entity.Mood(input.Mood)
		existing.Notes = input.Notes
		existing.Triggers = input.Triggers
		if err := uc.moodRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update mood entry: %w", err)
		}
		return existing, nil
	}

	entry := entity.NewMoodEntry(userID, date, entity.Mood(input.Mood))
	entry.Notes = input.Notes
	entry.Triggers = input.Triggers
	if err := uc.moodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return entry, nil
}

// ListMoodsUseCase lists a user's mood entries.
type ListMoodsUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewListMoodsUseCase creates a new ListMoodsUseCase instance.
func NewListMoodsUseCase(moodRepo adapter.MoodEntryRepository) *ListMoodsUseCase {
	return &ListMoodsUseCase{moodRepo: moodRepo}
}

// Execute returns the user's mood entries, newest entry date first.
func (uc *ListMoodsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.MoodEntry, error) {
	return uc.moodRepo.FindByUser(ctx, userID)
}

// Range returns the user's mood entries within [from, to].
func (uc *ListMoodsUseCase) Range(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodEntry, error) {
	return uc.moodRepo.FindByUserAndDateRange(ctx, userID, truncateToDay(from), truncateToDay(to))
}

// UpdateMoodInput represents the updatable fields of a mood entry. Nil
// fields are left unchanged.
type UpdateMoodInput struct {
	Mood     *string
	Notes    *string
	Triggers *string
}

// UpdateMoodUseCase edits an existing mood entry in place. The entry
// date is fixed; changing the date means logging a new entry.
type UpdateMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewUpdateMoodUseCase creates a new UpdateMoodUseCase instance.
func NewUpdateMoodUseCase(moodRepo adapter.MoodEntryRepository) *UpdateMoodUseCase {
	return &UpdateMoodUseCase{moodRepo: moodRepo}
}

// Execute applies the given subset to the entry if it belongs to the user.
func (uc *UpdateMoodUseCase) Execute(ctx context.Context, userID, entryID uuid.UUID, input UpdateMoodInput) (*entity.MoodEntry, error) {
	entry, err := uc.moodRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeMoodEntryNotFound,
			"mood entry not found",
			domainerror.ErrMoodEntryNotFound,
		)
	}

	if input.Mood != nil {
		if !entity.ValidMood(*input.Mood) {
			return nil, domainerror.NewDreamError(
				domainerror.ErrCodeInvalidMood,
				"invalid mood value",
				domainerror.ErrInvalidMood,
			)
		}
		entry.Mood = entity.Mood(*input.Mood)
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
	if input.Triggers != nil {
		entry.Triggers = *input.Triggers
	}

	if err := uc.moodRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	return entry, nil
}

// DeleteMoodUseCase removes a mood entry, owner-checked.
type DeleteMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewDeleteMoodUseCase creates a new DeleteMoodUseCase instance.
func NewDeleteMoodUseCase(moodRepo adapter.MoodEntryRepository) *DeleteMoodUseCase {
	return &DeleteMoodUseCase{moodRepo: moodRepo}
}

// Execute removes the entry if it belongs to the user.
func (uc *DeleteMoodUseCase) Execute(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := uc.moodRepo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return domainerror.NewDreamError(
			domainerror.ErrCodeMoodEntryNotFound,
			"mood entry not found",
			domainerror.ErrMoodEntryNotFound,
		)
	}
	return uc.moodRepo.Delete(ctx, entryID)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
