// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// MoodEntryRepository defines the interface for mood entry persistence.
type MoodEntryRepository interface {
	// Create persists a new mood entry.
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// FindByID retrieves a mood entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error)

	// FindByUserAndDate retrieves the user's entry for a calendar date.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error)

	// FindByUser retrieves all entries of a user, newest entry date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MoodEntry, error)

	// FindByUserAndDateRange retrieves a user's entries within [from, to].
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodEntry, error)

	// Update replaces the stored record for an existing entry.
	Update(ctx context.Context, entry *entity.MoodEntry) error

	// Delete removes a mood entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes all mood entries of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
