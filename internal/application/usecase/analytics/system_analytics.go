package analytics

import (
	"context"
	"time"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// SystemAnalytics is the platform wide summary shown on the admin
// console.
type SystemAnalytics struct {
	TotalUsers           int64     `json:"totalUsers"`
	ActiveUsers          int64     `json:"activeUsers"`
	TotalDreams          int64     `json:"totalDreams"`
	TotalInterpretations int64     `json:"totalInterpretations"`
	FlaggedDreams        int64     `json:"flaggedDreams"`
	OpenTickets          int64     `json:"openTickets"`
	GeneratedAt          time.Time `json:"generatedAt"`
}

// SystemAnalyticsUseCase computes platform wide counters.
type SystemAnalyticsUseCase struct {
	userRepo           adapter.UserRepository
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
	ticketRepo         adapter.SupportTicketRepository
}

// NewSystemAnalyticsUseCase creates a new SystemAnalyticsUseCase instance.
func NewSystemAnalyticsUseCase(
	userRepo adapter.UserRepository,
	dreamRepo adapter.DreamRepository,
	interpretationRepo adapter.InterpretationRepository,
	ticketRepo adapter.SupportTicketRepository,
) *SystemAnalyticsUseCase {
	return &SystemAnalyticsUseCase{
		userRepo:           userRepo,
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
		ticketRepo:         ticketRepo,
	}
}

// Execute returns the current platform counters.
func (uc *SystemAnalyticsUseCase) Execute(ctx context.Context) (*SystemAnalytics, error) {
	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := uc.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalDreams, err := uc.dreamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalInterpretations, err := uc.interpretationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	flagged, err := uc.dreamRepo.CountFlagged(ctx)
	if err != nil {
		return nil, err
	}
	openTickets, err := uc.ticketRepo.CountByStatus(ctx, entity.TicketStatusOpen)
	if err != nil {
		return nil, err
	}

	return &SystemAnalytics{
		TotalUsers:           totalUsers,
		ActiveUsers:          activeUsers,
		TotalDreams:          totalDreams,
		TotalInterpretations: totalInterpretations,
		FlaggedDreams:        flagged,
		OpenTickets:          openTickets,
		GeneratedAt:          time.Now().UTC(),
	}, nil
}
