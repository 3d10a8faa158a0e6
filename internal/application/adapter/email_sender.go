// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails. Queueing is
// best-effort from the caller's perspective: failures are logged by the
// caller and never propagated to the user-facing operation.
type EmailService interface {
	// QueueVerificationEmail queues an email verification message.
	QueueVerificationEmail(ctx context.Context, input QueueVerificationInput) error

	// QueuePasswordResetEmail queues a password reset message.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueTicketReplyEmail queues a support ticket reply notification.
	QueueTicketReplyEmail(ctx context.Context, input QueueTicketReplyInput) error
}

// QueueVerificationInput represents the input for queueing a verification email.
type QueueVerificationInput struct {
	UserID    string
	UserEmail string
	UserName  string
	VerifyURL string
	ExpiresIn string
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueTicketReplyInput represents the input for queueing a ticket reply
// notification email.
type QueueTicketReplyInput struct {
	UserEmail     string
	UserName      string
	TicketSubject string
	Reply         string
}
