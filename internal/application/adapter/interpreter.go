// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// InterpretationResult holds the structured output of an AI dream analysis.
type InterpretationResult struct {
	ShortSummary        string
	DetailedExplanation string
	PredictedEmotions   string
	WhyOccurred         string
	SuggestedActions    string
	RiskFlags           string
	Symbols             string
}

// DreamInterpreter defines the interface for AI dream interpretation.
type DreamInterpreter interface {
	// IsAvailable reports whether the interpreter is configured.
	IsAvailable() bool

	// Interpret analyzes a dream and returns a structured interpretation.
	Interpret(ctx context.Context, dreamText string, mood entity.Mood, sleepQuality int) (*InterpretationResult, error)
}
