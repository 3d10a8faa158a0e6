// Package error defines domain-specific errors for the DreamWell application.
package error

import "errors"

// Email delivery errors. These never reach API responses; the queue
// worker and repositories use them to decide whether to retry.
var (
	// ErrInvalidTemplate is returned when a queued job names a template
	// the renderer does not know.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when an email job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode identifies a class of email failure.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// ErrCodeEmailQueueFailed marks a failure to enqueue a job.
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	// ErrCodePermanentEmailFailure marks a provider rejection that a
	// retry cannot fix, such as an invalid recipient address.
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"

	// ErrCodeTemporaryEmailFailure marks a transient provider failure
	// worth retrying on the job's backoff schedule.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// ErrCodeInvalidTemplate marks a job with an unknown template type.
	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError carries a failure class alongside the underlying cause.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether the error is a provider
// rejection that should not be retried.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.Code == ErrCodePermanentEmailFailure
}
