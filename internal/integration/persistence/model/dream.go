package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// DreamModel represents the dreams table in the database.
type DreamModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title        string         `gorm:"type:varchar(255);not null"`
	DreamText    string         `gorm:"type:text;not null"`
	Tags         pq.StringArray `gorm:"type:text[]"`
	MoodAtWake   string         `gorm:"type:varchar(20);not null"`
	SleepQuality int            `gorm:"not null"`
	DreamDate    time.Time      `gorm:"type:date;index;not null"`
	IsPrivate    bool           `gorm:"default:true"`
	UserNotes    string         `gorm:"type:text"`
	IsFlagged    bool           `gorm:"default:false;index"`
	FlagReason   string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// TableName returns the table name for the DreamModel.
func (DreamModel) TableName() string {
	return "dreams"
}

// ToEntity converts a DreamModel to a domain Dream entity.
func (m *DreamModel) ToEntity() *entity.Dream {
	return &entity.Dream{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		DreamText:    m.DreamText,
		Tags:         []string(m.Tags),
		MoodAtWake:   entity.Mood(m.MoodAtWake),
		SleepQuality: m.SleepQuality,
		DreamDate:    m.DreamDate,
		IsPrivate:    m.IsPrivate,
		UserNotes:    m.UserNotes,
		IsFlagged:    m.IsFlagged,
		FlagReason:   m.FlagReason,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// DreamFromEntity creates a DreamModel from a domain Dream entity.
func DreamFromEntity(dream *entity.Dream) *DreamModel {
	return &DreamModel{
		ID:           dream.ID,
		UserID:       dream.UserID,
		Title:        dream.Title,
		DreamText:    dream.DreamText,
		Tags:         pq.StringArray(dream.Tags),
		MoodAtWake:   string(dream.MoodAtWake),
		SleepQuality: dream.SleepQuality,
		DreamDate:    dream.DreamDate,
		IsPrivate:    dream.IsPrivate,
		UserNotes:    dream.UserNotes,
		IsFlagged:    dream.IsFlagged,
		FlagReason:   dream.FlagReason,
		CreatedAt:    dream.CreatedAt,
		UpdatedAt:    dream.UpdatedAt,
	}
}

// InterpretationModel represents the interpretations table. A dream has
// at most one row here.
type InterpretationModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DreamID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ShortSummary        string    `gorm:"type:text"`
	DetailedExplanation string    `gorm:"type:text"`
	PredictedEmotions   string    `gorm:"type:text"`
	WhyOccurred         string    `gorm:"type:text"`
	SuggestedActions    string    `gorm:"type:text"`
	RiskFlags           string    `gorm:"type:text"`
	HasRiskFlag         bool      `gorm:"default:false"`
	Symbols             string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the InterpretationModel.
func (InterpretationModel) TableName() string {
	return "interpretations"
}

// ToEntity converts an InterpretationModel to a domain entity.
func (m *InterpretationModel) ToEntity() *entity.Interpretation {
	return &entity.Interpretation{
		ID:                  m.ID,
		DreamID:             m.DreamID,
		ShortSummary:        m.ShortSummary,
		DetailedExplanation: m.DetailedExplanation,
		PredictedEmotions:   m.PredictedEmotions,
		WhyOccurred:         m.WhyOccurred,
		SuggestedActions:    m.SuggestedActions,
		RiskFlags:           m.RiskFlags,
		HasRiskFlag:         m.HasRiskFlag,
		Symbols:             m.Symbols,
		CreatedAt:           m.CreatedAt,
	}
}

// InterpretationFromEntity creates an InterpretationModel from a domain entity.
func InterpretationFromEntity(in *entity.Interpretation) *InterpretationModel {
	return &InterpretationModel{
		ID:                  in.ID,
		DreamID:             in.DreamID,
		ShortSummary:        in.ShortSummary,
		DetailedExplanation: in.DetailedExplanation,
		PredictedEmotions:   in.PredictedEmotions,
		WhyOccurred:         in.WhyOccurred,
		SuggestedActions:    in.SuggestedActions,
		RiskFlags:           in.RiskFlags,
		HasRiskFlag:         in.HasRiskFlag,
		Symbols:             in.Symbols,
		CreatedAt:           in.CreatedAt,
	}
}
