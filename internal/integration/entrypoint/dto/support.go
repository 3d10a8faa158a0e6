package dto

import (
	"time"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// CreateTicketRequest represents the request body for opening a ticket.
type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required"`
}

// TicketReplyRequest represents the request body for an admin reply.
type TicketReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// TicketStatusRequest represents the request body for a status change.
type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TicketResponse represents a support ticket in API responses.
type TicketResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AdminReply string     `json:"adminReply,omitempty"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ToTicketResponse converts a SupportTicket entity to its DTO.
func ToTicketResponse(t *entity.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		Subject:    t.Subject,
		Message:    t.Message,
		Status:     string(t.Status),
		AdminReply: t.AdminReply,
		RepliedAt:  t.RepliedAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTicketListResponse converts a list of tickets.
func ToTicketListResponse(tickets []*entity.SupportTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketResponse(t))
	}
	return out
}
