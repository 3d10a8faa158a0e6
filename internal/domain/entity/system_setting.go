package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemSetting represents a key/value application setting managed from
// the admin console.
type SystemSetting struct {
	ID          uuid.UUID
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

// NewSystemSetting creates a setting with the given key and value.
func NewSystemSetting(key, value, description string) *SystemSetting {
	return &SystemSetting{
		ID:          uuid.New(),
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}
}
