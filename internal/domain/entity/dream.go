package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood represents a mood value used for dreams and mood entries.
type Mood string

const (
	MoodVeryHappy Mood = "VERY_HAPPY"
	MoodHappy     Mood = "HAPPY"
	MoodNeutral   Mood = "NEUTRAL"
	MoodSad       Mood = "SAD"
	MoodVerySad   Mood = "VERY_SAD"
	MoodAnxious   Mood = "ANXIOUS"
	MoodPeaceful  Mood = "PEACEFUL"
	MoodConfused  Mood = "CONFUSED"
)

// ValidMood reports whether the given string is a known mood value.
func ValidMood(s string) bool {
	switch Mood(s) {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad,
		MoodAnxious, MoodPeaceful, MoodConfused:
		return true
	}
	return false
}

// Dream represents a single journal entry.
type Dream struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	DreamText    string
	Tags         []string
	MoodAtWake   Mood
	SleepQuality int
	DreamDate    time.Time
	IsPrivate    bool
	UserNotes    string
	IsFlagged    bool
	FlagReason   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDream creates a new Dream with default values.
func NewDream(userID uuid.UUID, title, text string, mood Mood, sleepQuality int, dreamDate time.Time) *Dream {
	now := time.Now().UTC()
	return &Dream{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		DreamText:    text,
		MoodAtWake:   mood,
		SleepQuality: sleepQuality,
		DreamDate:    dreamDate,
		IsPrivate:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Flag marks the dream for administrative review.
func (d *Dream) Flag(reason string) {
	d.IsFlagged = true
	d.FlagReason = reason
	d.UpdatedAt = time.Now().UTC()
}

// Interpretation represents the AI-generated analysis of a dream.
type Interpretation struct {
	ID                  uuid.UUID
	DreamID             uuid.UUID
	ShortSummary        string
	DetailedExplanation string
	PredictedEmotions   string
	WhyOccurred         string
	SuggestedActions    string
	RiskFlags           string
	HasRiskFlag         bool
	Symbols             string
	CreatedAt           time.Time
}

// NewInterpretation creates an interpretation for the given dream.
func NewInterpretation(dreamID uuid.UUID) *Interpretation {
	return &Interpretation{
		ID:        uuid.New(),
		DreamID:   dreamID,
		CreatedAt: time.Now().UTC(),
	}
}
