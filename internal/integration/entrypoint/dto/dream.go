package dto

import (
	"time"

	"github.com/dreamwell/backend/internal/application/usecase/dream"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"

// CreateDreamRequest represents the request body for logging a dream.
type CreateDreamRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=200"`
	DreamText    string   `json:"dreamText" binding:"required"`
	Tags         []string `json:"tags"`
	MoodAtWake   string   `json:"moodAtWake" binding:"required"`
	SleepQuality int      `json:"sleepQuality" binding:"required"`
	DreamDate    string   `json:"dreamDate" binding:"required"`
	IsPrivate    *bool    `json:"isPrivate"`
	UserNotes    string   `json:"userNotes"`
}

// UpdateDreamRequest represents the request body for editing a dream.
// Omitted fields are left unchanged.
type UpdateDreamRequest struct {
	Title        *string   `json:"title" binding:"omitempty,min=1,max=200"`
	DreamText    *string   `json:"dreamText"`
	Tags         *[]string `json:"tags"`
	MoodAtWake   *string   `json:"moodAtWake"`
	SleepQuality *int      `json:"sleepQuality"`
	DreamDate    *string   `json:"dreamDate"`
	IsPrivate    *bool     `json:"isPrivate"`
	UserNotes    *string   `json:"userNotes"`
}

// InterpretationResponse represents the AI analysis of a dream.
type InterpretationResponse struct {
	ID                  string    `json:"id"`
	ShortSummary        string    `json:"shortSummary"`
	DetailedExplanation string    `json:"detailedExplanation"`
	PredictedEmotions   string    `json:"predictedEmotions"`
	WhyOccurred         string    `json:"whyOccurred"`
	SuggestedActions    string    `json:"suggestedActions"`
	RiskFlags           string    `json:"riskFlags"`
	HasRiskFlag         bool      `json:"hasRiskFlag"`
	Symbols             string    `json:"symbols"`
	CreatedAt           time.Time `json:"createdAt"`
}

// DreamResponse represents a journal entry in API responses.
type DreamResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	DreamText      string                  `json:"dreamText"`
	Tags           []string                `json:"tags"`
	MoodAtWake     string                  `json:"moodAtWake"`
	SleepQuality   int                     `json:"sleepQuality"`
	DreamDate      string                  `json:"dreamDate"`
	IsPrivate      bool                    `json:"isPrivate"`
	UserNotes      string                  `json:"userNotes,omitempty"`
	IsFlagged      bool                    `json:"isFlagged"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	Interpretation *InterpretationResponse `json:"interpretation,omitempty"`
}

// ToInterpretationResponse converts an Interpretation entity to its DTO.
func ToInterpretationResponse(in *entity.Interpretation) *InterpretationResponse {
	if in == nil {
		return nil
	}
	return &InterpretationResponse{
		ID:                  in.ID.String(),
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

// ToDreamResponse converts a Dream entity and its optional interpretation
// to a DreamResponse DTO.
func ToDreamResponse(d *entity.Dream, in *entity.Interpretation) DreamResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return DreamResponse{
		ID:             d.ID.String(),
		Title:          d.Title,
		DreamText:      d.DreamText,
		Tags:           tags,
		MoodAtWake:     string(d.MoodAtWake),
		SleepQuality:   d.SleepQuality,
		DreamDate:      d.DreamDate.Format(DateLayout),
		IsPrivate:      d.IsPrivate,
		UserNotes:      d.UserNotes,
		IsFlagged:      d.IsFlagged,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Interpretation: ToInterpretationResponse(in),
	}
}

// ToDreamListResponse converts a list of dreams with interpretations.
func ToDreamListResponse(items []dream.DreamWithInterpretation) []DreamResponse {
	out := make([]DreamResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToDreamResponse(item.Dream, item.Interpretation))
	}
	return out
}
