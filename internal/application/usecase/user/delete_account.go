package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
)

// DeleteAccountUseCase removes a user and everything they own.
type DeleteAccountUseCase struct {
	userRepo       adapter.UserRepository
	refreshRepo    adapter.RefreshTokenRepository
	dreamRepo      adapter.DreamRepository
	moodRepo       adapter.MoodEntryRepository
	ticketRepo     adapter.SupportTicketRepository
	emailQueueRepo adapter.EmailQueueRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	refreshRepo adapter.RefreshTokenRepository,
	dreamRepo adapter.DreamRepository,
	moodRepo adapter.MoodEntryRepository,
	ticketRepo adapter.SupportTicketRepository,
	emailQueueRepo adapter.EmailQueueRepository,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:       userRepo,
		refreshRepo:    refreshRepo,
		dreamRepo:      dreamRepo,
		moodRepo:       moodRepo,
		ticketRepo:     ticketRepo,
		emailQueueRepo: emailQueueRepo,
	}
}

// Execute deletes the user's dreams, mood entries, tickets, refresh
// tokens, and undelivered emails before removing the account record
// itself.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.dreamRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete dreams: %w", err)
	}
	if err := uc.moodRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete mood entries: %w", err)
	}
	if err := uc.ticketRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete support tickets: %w", err)
	}
	if err := uc.refreshRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	if _, err := uc.emailQueueRepo.DeletePendingByRecipient(ctx, user.Email); err != nil {
		return fmt.Errorf("failed to delete queued emails: %w", err)
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
