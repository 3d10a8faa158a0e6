package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ValidTicketStatus reports whether the given string is a known status.
func ValidTicketStatus(s string) bool {
	switch TicketStatus(s) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// SupportTicket represents a support request raised by a user.
type SupportTicket struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Subject    string
	Message    string
	Status     TicketStatus
	AdminReply string
	RepliedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSupportTicket creates an open ticket for the given user.
func NewSupportTicket(userID uuid.UUID, subject, message string) *SupportTicket {
	now := time.Now().UTC()
	return &SupportTicket{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Status:    TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reply records an administrative reply and moves the ticket to
// IN_PROGRESS unless it is already resolved or closed.
func (t *SupportTicket) Reply(reply string) {
	now := time.Now().UTC()
	t.AdminReply = reply
	t.RepliedAt = &now
	if t.Status == TicketStatusOpen {
		t.Status = TicketStatusInProgress
	}
	t.UpdatedAt = now
}

// SetStatus updates the ticket status.
func (t *SupportTicket) SetStatus(status TicketStatus) {
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
}
