// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// SupportTicketRepository defines the interface for support ticket persistence.
type SupportTicketRepository interface {
	// Create persists a new ticket.
	Create(ctx context.Context, ticket *entity.SupportTicket) error

	// FindByID retrieves a ticket by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)

	// FindByUser retrieves all tickets of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)

	// FindAll retrieves all tickets, newest first.
	FindAll(ctx context.Context) ([]*entity.SupportTicket, error)

	// FindByStatus retrieves all tickets with the given status, newest first.
	FindByStatus(ctx context.Context, status entity.TicketStatus) ([]*entity.SupportTicket, error)

	// Update replaces the stored record for an existing ticket.
	Update(ctx context.Context, ticket *entity.SupportTicket) error

	// DeleteByUser removes all tickets of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// CountByStatus returns the number of tickets with the given status.
	CountByStatus(ctx context.Context, status entity.TicketStatus) (int64, error)
}

// SystemSettingsRepository defines the interface for system setting persistence.
type SystemSettingsRepository interface {
	// FindByKey retrieves a setting by its key.
	FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error)

	// Save persists a setting, replacing an existing one with the same key.
	Save(ctx context.Context, setting *entity.SystemSetting) error
}
