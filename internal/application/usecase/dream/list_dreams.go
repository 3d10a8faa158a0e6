package dream

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// DreamWithInterpretation pairs a dream with its stored interpretation,
// which may be nil when interpretation failed or is pending.
type DreamWithInterpretation struct {
	Dream          *entity.Dream
	Interpretation *entity.Interpretation
}

// ListDreamsUseCase lists a user's dreams with their interpretations.
type ListDreamsUseCase struct {
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
}

// NewListDreamsUseCase creates a new ListDreamsUseCase instance.
func NewListDreamsUseCase(dreamRepo adapter.DreamRepository, interpretationRepo adapter.InterpretationRepository) *ListDreamsUseCase {
	return &ListDreamsUseCase{
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
	}
}

// Execute returns the user's dreams, newest dream date first.
func (uc *ListDreamsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]DreamWithInterpretation, error) {
	dreams, err := uc.dreamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.attachInterpretations(ctx, dreams)
}

// Search returns the user's dreams matching the keyword.
func (uc *ListDreamsUseCase) Search(ctx context.Context, userID uuid.UUID, keyword string) ([]DreamWithInterpretation, error) {
	dreams, err := uc.dreamRepo.Search(ctx, userID, keyword)
	if err != nil {
		return nil, err
	}
	return uc.attachInterpretations(ctx, dreams)
}

func (uc *ListDreamsUseCase) attachInterpretations(ctx context.Context, dreams []*entity.Dream) ([]DreamWithInterpretation, error) {
	ids := make([]uuid.UUID, len(dreams))
	for i, d := range dreams {
		ids[i] = d.ID
	}

	interpretations, err := uc.interpretationRepo.FindByDreams(ctx, ids)
	if err != nil {
		return nil, err
	}
	byDream := make(map[uuid.UUID]*entity.Interpretation, len(interpretations))
	for _, in := range interpretations {
		byDream[in.DreamID] = in
	}

	out := make([]DreamWithInterpretation, len(dreams))
	for i, d := range dreams {
		out[i] = DreamWithInterpretation{Dream: d, Interpretation: byDream[d.ID]}
	}
	return out, nil
}

// GetDreamUseCase retrieves a single dream, owner-checked.
type GetDreamUseCase struct {
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
}

// NewGetDreamUseCase creates a new GetDreamUseCase instance.
func NewGetDreamUseCase(dreamRepo adapter.DreamRepository, interpretationRepo adapter.InterpretationRepository) *GetDreamUseCase {
	return &GetDreamUseCase{
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
	}
}

// Execute returns the dream if it belongs to the user.
func (uc *GetDreamUseCase) Execute(ctx context.Context, userID, dreamID uuid.UUID) (*DreamWithInterpretation, error) {
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

	interpretation, err := uc.interpretationRepo.FindByDream(ctx, dreamID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrInterpretationNotFound) {
			return nil, err
		}
		interpretation = nil
	}

	return &DreamWithInterpretation{Dream: dream, Interpretation: interpretation}, nil
}
