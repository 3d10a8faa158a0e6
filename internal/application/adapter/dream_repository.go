// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// DreamRepository defines the interface for dream persistence operations.
type DreamRepository interface {
	// Create persists a new dream.
	Create(ctx context.Context, dream *entity.Dream) error

	// FindByID retrieves a dream by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dream, error)

	// FindByUser retrieves all dreams of a user, newest dream date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Dream, error)

	// FindByUserAndDateRange retrieves a user's dreams within [from, to].
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Dream, error)

	// Search retrieves a user's dreams whose title or text contains the keyword.
	Search(ctx context.Context, userID uuid.UUID, keyword string) ([]*entity.Dream, error)

	// FindFlagged retrieves all dreams flagged for review.
	FindFlagged(ctx context.Context) ([]*entity.Dream, error)

	// Update replaces the stored record for an existing dream.
	Update(ctx context.Context, dream *entity.Dream) error

	// Delete removes a dream and its interpretation.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes all dreams of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// CountByUser returns the number of dreams logged by the user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Count returns the total number of dreams.
	Count(ctx context.Context) (int64, error)

	// CountFlagged returns the number of flagged dreams.
	CountFlagged(ctx context.Context) (int64, error)
}

// InterpretationRepository defines the interface for stored AI
// interpretations. A dream has at most one interpretation; Save replaces
// any existing one.
type InterpretationRepository interface {
	// Save persists the interpretation, replacing a previous one for the
	// same dream.
	Save(ctx context.Context, interpretation *entity.Interpretation) error

	// FindByDream retrieves the interpretation for a dream.
	FindByDream(ctx context.Context, dreamID uuid.UUID) (*entity.Interpretation, error)

	// FindByDreams retrieves interpretations for the given dreams.
	FindByDreams(ctx context.Context, dreamIDs []uuid.UUID) ([]*entity.Interpretation, error)

	// Count returns the total number of interpretations.
	Count(ctx context.Context) (int64, error)
}
