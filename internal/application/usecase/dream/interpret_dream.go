package dream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// InterpretDreamUseCase runs the AI analysis for a dream and stores the
// result, replacing any previous interpretation. An interpretation whose
// risk flags are anything other than "none" flags the dream for
// administrative review.
type InterpretDreamUseCase struct {
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
	interpreter        adapter.DreamInterpreter
}

// NewInterpretDreamUseCase creates a new InterpretDreamUseCase instance.
func NewInterpretDreamUseCase(
	dreamRepo adapter.DreamRepository,
	interpretationRepo adapter.InterpretationRepository,
	interpreter adapter.DreamInterpreter,
) *InterpretDreamUseCase {
	return &InterpretDreamUseCase{
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
		interpreter:        interpreter,
	}
}

// Execute interprets the given dream, owner-checked via userID.
func (uc *InterpretDreamUseCase) Execute(ctx context.Context, userID, dreamID uuid.UUID) (*entity.Interpretation, error) {
	dream, err := uc.dreamRepo.FindByID(ctx, dreamID)
	if err != nil {
		return nil, err
	}
	if dream.UserID != userID {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeDreamNotFound,
			"dream not found",
			domainerror.ErrDreamNotFound,
		)
	}
	return uc.interpret(ctx, dream)
}

// TryInterpret interprets the dream and swallows failures. It returns
// nil when the interpreter is unavailable or the analysis failed.
func (uc *InterpretDreamUseCase) TryInterpret(ctx context.Context, dream *entity.Dream) *entity.Interpretation {
	interpretation, err := uc.interpret(ctx, dream)
	if err != nil {
		slog.Error("Dream interpretation failed", "error", err, "dreamID", dream.ID)
		return nil
	}
	return interpretation
}

func (uc *InterpretDreamUseCase) interpret(ctx context.Context, dream *entity.Dream) (*entity.Interpretation, error) {
	if uc.interpreter == nil || !uc.interpreter.IsAvailable() {
		return nil, errors.New("dream interpreter is not configured")
	}

	result, err := uc.interpreter.Interpret(ctx, dream.DreamText, dream.MoodAtWake, dream.SleepQuality)
	if err != nil {
		return nil, domainerror.NewDreamError(
			domainerror.ErrCodeInterpretationFailed,
			"failed to interpret dream",
			err,
		)
	}

	interpretation := entity.NewInterpretation(dream.ID)
	interpretation.ShortSummary = result.ShortSummary
	interpretation.DetailedExplanation = result.DetailedExplanation
	interpretation.PredictedEmotions = result.PredictedEmotions
	interpretation.WhyOccurred = result.WhyOccurred
	interpretation.SuggestedActions = result.SuggestedActions
	interpretation.RiskFlags = result.RiskFlags
	interpretation.Symbols = result.Symbols
	interpretation.HasRiskFlag = hasRisk(result.RiskFlags)

	if err := uc.interpretationRepo.Save(ctx, interpretation); err != nil {
		return nil, fmt.Errorf("failed to save interpretation: %w", err)
	}

	if interpretation.HasRiskFlag && !dream.IsFlagged {
		dream.Flag(result.RiskFlags)
		if err := uc.dreamRepo.Update(ctx, dream); err != nil {
			return nil, fmt.Errorf("failed to flag dream: %w", err)
		}
	}

	return interpretation, nil
}

func hasRisk(riskFlags string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(riskFlags))
	return trimmed != "" && trimmed != "none"
}
