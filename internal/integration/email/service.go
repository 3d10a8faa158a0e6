// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueVerificationEmail queues an email verification message.
func (s *Service) QueueVerificationEmail(ctx context.Context, input adapter.QueueVerificationInput) error {
	subject := "Verify your email - DreamWell"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"verify_url": input.VerifyURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateEmailVerification,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue verification email",
			err,
		)
	}

	return nil
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - DreamWell"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueTicketReplyEmail queues a support ticket reply notification.
func (s *Service) QueueTicketReplyEmail(ctx context.Context, input adapter.QueueTicketReplyInput) error {
	subject := "We replied to your support ticket - DreamWell"

	templateData := map[string]interface{}{
		"user_name":      input.UserName,
		"ticket_subject": input.TicketSubject,
		"reply":          input.Reply,
	}

	job := entity.NewEmailJob(
		entity.TemplateTicketReply,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue ticket reply email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
