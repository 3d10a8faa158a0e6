// Package error defines domain-specific errors for the DreamWell application.
package error

import "errors"

// Dream journal domain errors.
var (
	// ErrDreamNotFound is returned when a dream does not exist or is not
	// owned by the requesting user.
	ErrDreamNotFound = errors.New("dream not found")

	// ErrInvalidMood is returned when a mood value is not one of the
	// known mood constants.
	ErrInvalidMood = errors.New("invalid mood value")

	// ErrInvalidSleepQuality is returned when sleep quality is outside 1-5.
	ErrInvalidSleepQuality = errors.New("sleep quality must be between 1 and 5")

	// ErrInterpretationFailed is returned when the AI interpretation call
	// or its response parsing fails.
	ErrInterpretationFailed = errors.New("failed to interpret dream")

	// ErrInterpretationNotFound is returned when a dream has no stored
	// interpretation.
	ErrInterpretationNotFound = errors.New("interpretation not found")

	// ErrMoodEntryNotFound is returned when a mood entry does not exist or
	// is not owned by the requesting user.
	ErrMoodEntryNotFound = errors.New("mood entry not found")
)

// DreamErrorCode defines error codes for dream journal errors.
// Format: DREAM-XXYYYY where XX is category and YYYY is specific error.
type DreamErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMood         DreamErrorCode = "DREAM-010001"
	ErrCodeInvalidSleepQuality DreamErrorCode = "DREAM-010002"

	// Lookup errors (02XXXX)
	ErrCodeDreamNotFound          DreamErrorCode = "DREAM-020001"
	ErrCodeMoodEntryNotFound      DreamErrorCode = "DREAM-020002"
	ErrCodeInterpretationNotFound DreamErrorCode = "DREAM-020003"

	// Interpretation errors (03XXXX)
	ErrCodeInterpretationFailed DreamErrorCode = "DREAM-030001"
)

// DreamError represents a dream journal error with code and message.
type DreamError struct {
	Code    DreamErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DreamError) Unwrap() error {
	return e.Err
}

// NewDreamError creates a new DreamError with the given code and message.
func NewDreamError(code DreamErrorCode, message string, err error) *DreamError {
	return &DreamError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
