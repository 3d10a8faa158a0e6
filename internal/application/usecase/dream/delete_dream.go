package dream

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// DeleteDreamUseCase handles dream deletion, owner-checked.
type DeleteDreamUseCase struct {
	dreamRepo adapter.DreamRepository
}

// NewDeleteDreamUseCase creates a new DeleteDreamUseCase instance.
func NewDeleteDreamUseCase(dreamRepo adapter.DreamRepository) *DeleteDreamUseCase {
	return &DeleteDreamUseCase{dreamRepo: dreamRepo}
}

// Execute removes the dream and its interpretation if it belongs to the
// user.
func (uc *DeleteDreamUseCase) Execute(ctx context.Context, userID, dreamID uuid.UUID) error {
	dream, err := uc.dreamRepo.FindByID(ctx, dreamID)
	if err != nil {
		return err
	}
	if dream.UserID != userID {
		return domainerror.NewDreamError(
			domainerror.ErrCodeDreamNotFound,
			"dream not found",
			domainerror.ErrDreamNotFound,
		)
	}

	if err := uc.dreamRepo.Delete(ctx, dreamID); err != nil {
		return fmt.Errorf("failed to delete dream: %w", err)
	}
	return nil
}
