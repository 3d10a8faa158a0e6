package dto

import (
	"github.com/dreamwell/backend/internal/domain/entity"
)

// LogMoodRequest represents the request body for logging a daily mood.
type LogMoodRequest struct {
	EntryDate string `json:"entryDate" binding:"required"`
	Mood      string `json:"mood" binding:"required"`
	Notes     string `json:"notes"`
	Triggers  string `json:"triggers"`
}

// UpdateMoodRequest represents the request body for editing a mood entry.
// Omitted fields are left unchanged.
type UpdateMoodRequest struct {
	Mood     *string `json:"mood"`
	Notes    *string `json:"notes"`
	Triggers *string `json:"triggers"`
}

// MoodEntryResponse represents a daily mood entry in API responses.
type MoodEntryResponse struct {
	ID        string `json:"id"`
	EntryDate string `json:"entryDate"`
	Mood      string `json:"mood"`
	Notes     string `json:"notes,omitempty"`
	Triggers  string `json:"triggers,omitempty"`
}

// ToMoodEntryResponse converts a MoodEntry entity to its DTO.
func ToMoodEntryResponse(e *entity.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:        e.ID.String(),
		EntryDate: e.EntryDate.Format(DateLayout),
		Mood:      string(e.Mood),
		Notes:     e.Notes,
		Triggers:  e.Triggers,
	}
}

// ToMoodEntryListResponse converts a list of mood entries.
func ToMoodEntryListResponse(entries []*entity.MoodEntry) []MoodEntryResponse {
	out := make([]MoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToMoodEntryResponse(e))
	}
	return out
}
