// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// GeminiService implements the DreamInterpreter using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Interpret analyzes a dream and returns a structured interpretation.
func (s *GeminiService) Interpret(ctx context.Context, dreamText string, mood entity.Mood, sleepQuality int) (*adapter.InterpretationResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildDreamPrompt(dreamText, mood, sleepQuality)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := parseDreamResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// buildDreamPrompt creates the interpretation prompt for Gemini.
func buildDreamPrompt(dreamText string, mood entity.Mood, sleepQuality int) string {
	var sb strings.Builder

	sb.WriteString(`You are a thoughtful dream analyst. Analyze the dream below and respond with a single JSON object using exactly these keys:

{
  "shortSummary": "one or two sentences summarizing the dream's meaning",
  "detailedExplanation": "a longer interpretation of the dream's themes",
  "predictedEmotions": "comma-separated emotions the dreamer likely felt",
  "whyOccurred": "a plausible reason this dream occurred",
  "suggestedActions": "gentle, practical suggestions for the dreamer",
  "riskFlags": "either the word none, or a comma-separated list of concerns such as recurring nightmares, severe distress, or self-harm themes",
  "symbols": "comma-separated key symbols that appeared in the dream"
}

RULES:
- Be supportive and non-clinical. You are not providing medical advice.
- Set riskFlags to anything other than none ONLY when the dream content genuinely suggests distress that merits attention.
- Keep symbols short, lowercase, single words or two-word phrases.

DREAM:
`)
	sb.WriteString(dreamText)
	sb.WriteString(fmt.Sprintf("\n\nMOOD ON WAKING: %s\nSLEEP QUALITY (1-5): %d\n", mood, sleepQuality))

	return sb.String()
}

// dreamResponse mirrors the JSON shape requested from the model.
type dreamResponse struct {
	ShortSummary        string `json:"shortSummary"`
	DetailedExplanation string `json:"detailedExplanation"`
	PredictedEmotions   string `json:"predictedEmotions"`
	WhyOccurred         string `json:"whyOccurred"`
	SuggestedActions    string `json:"suggestedActions"`
	RiskFlags           string `json:"riskFlags"`
	Symbols             string `json:"symbols"`
}

// parseDreamResponse extracts the structured interpretation from the
// model response.
func parseDreamResponse(resp *genai.GenerateContentResponse) (*adapter.InterpretationResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	payload := strings.TrimSpace(raw.String())
	// Some model variants wrap JSON in markdown fences despite the MIME
	// type hint.
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	var parsed dreamResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON from model: %w", err)
	}
	if parsed.ShortSummary == "" {
		return nil, fmt.Errorf("model response missing shortSummary")
	}
	if strings.TrimSpace(parsed.RiskFlags) == "" {
		parsed.RiskFlags = "none"
	}

	return &adapter.InterpretationResult{
		ShortSummary:        parsed.ShortSummary,
		DetailedExplanation: parsed.DetailedExplanation,
		PredictedEmotions:   parsed.PredictedEmotions,
		WhyOccurred:         parsed.WhyOccurred,
		SuggestedActions:    parsed.SuggestedActions,
		RiskFlags:           parsed.RiskFlags,
		Symbols:             parsed.Symbols,
	}, nil
}
