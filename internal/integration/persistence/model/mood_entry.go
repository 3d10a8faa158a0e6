package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// MoodEntryModel represents the mood_entries table. A user has at most
// one entry per calendar date.
type MoodEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_date"`
	EntryDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_mood_user_date"`
	Mood      string    `gorm:"type:varchar(20);not null"`
	Notes     string    `gorm:"type:text"`
	Triggers  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MoodEntryModel.
func (MoodEntryModel) TableName() string {
	return "mood_entries"
}

// ToEntity converts a MoodEntryModel to a domain MoodEntry entity.
func (m *MoodEntryModel) ToEntity() *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		EntryDate: m.EntryDate,
		Mood:      entity.Mood(m.Mood),
		Notes:     m.Notes,
		Triggers:  m.Triggers,
		CreatedAt: m.CreatedAt,
	}
}

// MoodEntryFromEntity creates a MoodEntryModel from a domain entity.
func MoodEntryFromEntity(entry *entity.MoodEntry) *MoodEntryModel {
	return &MoodEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		EntryDate: entry.EntryDate,
		Mood:      string(entry.Mood),
		Notes:     entry.Notes,
		Triggers:  entry.Triggers,
		CreatedAt: entry.CreatedAt,
	}
}
