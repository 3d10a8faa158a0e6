package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry represents a daily mood log entry. A user has at most one
// entry per calendar date.
type MoodEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	Mood      Mood
	Notes     string
	Triggers  string
	CreatedAt time.Time
}

// NewMoodEntry creates a mood entry for the given user and date.
func NewMoodEntry(userID uuid.UUID, entryDate time.Time, mood Mood) *MoodEntry {
	return &MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		EntryDate: entryDate,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
}
