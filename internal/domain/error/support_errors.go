// Package error defines domain-specific errors for the DreamWell application.
package error

import "errors"

// Support desk and admin console domain errors.
var (
	// ErrTicketNotFound is returned when a support ticket does not exist
	// or is not visible to the requesting user.
	ErrTicketNotFound = errors.New("support ticket not found")

	// ErrInvalidTicketStatus is returned when a status value is not one
	// of the known ticket statuses.
	ErrInvalidTicketStatus = errors.New("invalid ticket status")

	// ErrSettingNotFound is returned when a system setting key does not exist.
	ErrSettingNotFound = errors.New("system setting not found")
)
