// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/dreamwell/backend/internal/application/adapter"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend. Failures are classified so the queue
// worker knows whether to retry.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

// classifySendError wraps a provider error as permanent or temporary.
// The Resend SDK does not expose status codes, so classification falls
// back on matching the error text. Auth and validation rejections
// (401, 403, 422) will not succeed on retry; rate limits and 5xx will.
func classifySendError(err error) *domainerror.EmailError {
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"401", "403", "422",
		"unauthorized", "forbidden",
		"validation", "invalid", "bad request",
	} {
		if strings.Contains(msg, pattern) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"temporary email failure",
		err,
	)
}

// MockEmailSender stands in for Resend when no API key is configured.
// It records every message and logs it instead of delivering.
type MockEmailSender struct {
	SentEmails []adapter.SendEmailInput
	failWith   error
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{SentEmails: make([]adapter.SendEmailInput, 0)}
}

// Send records the message without delivering it.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.SentEmails = append(m.SentEmails, input)
	slog.Info("Mock email sender: captured message", "to", input.To, "subject", input.Subject)
	return &adapter.SendEmailResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.SentEmails)),
	}, nil
}

// FailWith makes every subsequent Send return err; nil restores delivery.
func (m *MockEmailSender) FailWith(err error) {
	m.failWith = err
}

// Reset clears captured messages and any configured failure.
func (m *MockEmailSender) Reset() {
	m.SentEmails = m.SentEmails[:0]
	m.failWith = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
