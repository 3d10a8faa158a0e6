package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// ExportedDream is a dream plus its interpretation as included in an
// account data export.
type ExportedDream struct {
	Dream          *entity.Dream          `json:"dream"`
	Interpretation *entity.Interpretation `json:"interpretation,omitempty"`
}

// DataExport is the full dump of a user's account data.
type DataExport struct {
	Profile     *entity.User        `json:"profile"`
	Dreams      []ExportedDream     `json:"dreams"`
	MoodEntries []*entity.MoodEntry `json:"moodEntries"`
	ExportedAt  time.Time           `json:"exportedAt"`
}

// ExportDataUseCase builds a complete export of a user's data.
type ExportDataUseCase struct {
	userRepo           adapter.UserRepository
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
	moodRepo           adapter.MoodEntryRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	userRepo adapter.UserRepository,
	dreamRepo adapter.DreamRepository,
	interpretationRepo adapter.InterpretationRepository,
	moodRepo adapter.MoodEntryRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		userRepo:           userRepo,
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
		moodRepo:           moodRepo,
	}
}

// Execute gathers the user's profile, dreams, interpretations and mood
// entries. Credential fields are cleared before the profile is returned.
func (uc *ExportDataUseCase) Execute(ctx context.Context, userID uuid.UUID) (*DataExport, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	user.EmailVerificationToken = nil
	user.EmailVerificationExpiry = nil
	user.PasswordResetToken = nil
	user.PasswordResetExpiry = nil

	dreams, err := uc.dreamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
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

	exported := make([]ExportedDream, len(dreams))
	for i, d := range dreams {
		exported[i] = ExportedDream{Dream: d, Interpretation: byDream[d.ID]}
	}

	moods, err := uc.moodRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DataExport{
		Profile:     user,
		Dreams:      exported,
		MoodEntries: moods,
		ExportedAt:  time.Now().UTC(),
	}, nil
}
