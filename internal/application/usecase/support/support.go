// Package support contains support ticket use cases for users and
// administrators.
package support

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// CreateTicketUseCase opens a new support ticket.
type CreateTicketUseCase struct {
	ticketRepo adapter.SupportTicketRepository
}

// NewCreateTicketUseCase creates a new CreateTicketUseCase instance.
func NewCreateTicketUseCase(ticketRepo adapter.SupportTicketRepository) *CreateTicketUseCase {
	return &CreateTicketUseCase{ticketRepo: ticketRepo}
}

// Execute opens a ticket in OPEN state.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, userID uuid.UUID, subject, message string) (*entity.SupportTicket, error) {
	ticket := entity.NewSupportTicket(userID, subject, message)
	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create support ticket: %w", err)
	}
	return ticket, nil
}

// ListTicketsUseCase lists a user's own tickets.
type ListTicketsUseCase struct {
	ticketRepo adapter.SupportTicketRepository
}

// NewListTicketsUseCase creates a new ListTicketsUseCase instance.
func NewListTicketsUseCase(ticketRepo adapter.SupportTicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

// Execute returns the user's tickets, newest first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	return uc.ticketRepo.FindByUser(ctx, userID)
}

// Get returns one ticket if it belongs to the user.
func (uc *ListTicketsUseCase) Get(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, domainerror.ErrTicketNotFound
	}
	return ticket, nil
}

// ManageTicketsUseCase holds the administrative ticket operations.
type ManageTicketsUseCase struct {
	ticketRepo   adapter.SupportTicketRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewManageTicketsUseCase creates a new ManageTicketsUseCase instance.
func NewManageTicketsUseCase(
	ticketRepo adapter.SupportTicketRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *ManageTicketsUseCase {
	return &ManageTicketsUseCase{
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// ListAll returns every ticket, newest first, optionally filtered by
// status.
func (uc *ManageTicketsUseCase) ListAll(ctx context.Context, status string) ([]*entity.SupportTicket, error) {
	if status == "" {
		return uc.ticketRepo.FindAll(ctx)
	}
	if !entity.ValidTicketStatus(status) {
		return nil, domainerror.ErrInvalidTicketStatus
	}
	return uc.ticketRepo.FindByStatus(ctx, entity.TicketStatus(status))
}

// Reply records an administrative reply on the ticket.
func (uc *ManageTicketsUseCase) Reply(ctx context.Context, ticketID uuid.UUID, reply string) (*entity.SupportTicket, error) {
	ticket, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	ticket.Reply(reply)
	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update support ticket: %w", err)
	}
	uc.notifyOwner(ctx, ticket, reply)
	return ticket, nil
}

// notifyOwner queues a reply notification email. The reply itself has
// already been persisted, so a queue failure is logged and swallowed.
func (uc *ManageTicketsUseCase) notifyOwner(ctx context.Context, ticket *entity.SupportTicket, reply string) {
	owner, err := uc.userRepo.FindByID(ctx, ticket.UserID)
	if err != nil {
		slog.Warn("Failed to load ticket owner for reply notification", "error", err, "ticketID", ticket.ID)
		return
	}
	err = uc.emailService.QueueTicketReplyEmail(ctx, adapter.QueueTicketReplyInput{
		UserEmail:     owner.Email,
		UserName:      owner.Name,
		TicketSubject: ticket.Subject,
		Reply:         reply,
	})
	if err != nil {
		slog.Warn("Failed to queue ticket reply email", "error", err, "ticketID", ticket.ID)
	}
}

// UpdateStatus moves the ticket to the given status.
func (uc *ManageTicketsUseCase) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status string) (*entity.SupportTicket, error) {
	if !entity.ValidTicketStatus(status) {
		return nil, domainerror.ErrInvalidTicketStatus
	}
	ticket, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	ticket.SetStatus(entity.TicketStatus(status))
	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update support ticket: %w", err)
	}
	return ticket, nil
}
