// Package analytics contains personal and system analytics use cases.
package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// MoodCount holds the number of dreams woken up with a given mood.
type MoodCount struct {
	Mood  entity.Mood `json:"mood"`
	Count int         `json:"count"`
}

// SymbolCount holds how often a symbol appeared across interpretations.
type SymbolCount struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// MoodSleep holds the average sleep quality observed for a mood.
type MoodSleep struct {
	Mood                entity.Mood `json:"mood"`
	AverageSleepQuality float64     `json:"averageSleepQuality"`
}

// UserAnalytics is the personal analytics summary for one user.
type UserAnalytics struct {
	TotalDreams          int64         `json:"totalDreams"`
	AverageSleepQuality  float64       `json:"averageSleepQuality"`
	MostCommonMood       entity.Mood   `json:"mostCommonMood,omitempty"`
	MoodTrends           []MoodCount   `json:"moodTrends"`
	TopSymbols           []SymbolCount `json:"topSymbols"`
	MoodSleepCorrelation []MoodSleep   `json:"moodSleepCorrelation"`
	GeneratedAt          time.Time     `json:"generatedAt"`
}

const topSymbolLimit = 10

// UserAnalyticsUseCase computes a user's dream statistics. Results are
// cached; a cache failure falls back to recomputing.
type UserAnalyticsUseCase struct {
	dreamRepo          adapter.DreamRepository
	interpretationRepo adapter.InterpretationRepository
	cache              adapter.Cache
	cacheTTL           time.Duration
}

// NewUserAnalyticsUseCase creates a new UserAnalyticsUseCase instance.
func NewUserAnalyticsUseCase(
	dreamRepo adapter.DreamRepository,
	interpretationRepo adapter.InterpretationRepository,
	cache adapter.Cache,
	cacheTTL time.Duration,
) *UserAnalyticsUseCase {
	return &UserAnalyticsUseCase{
		dreamRepo:          dreamRepo,
		interpretationRepo: interpretationRepo,
		cache:              cache,
		cacheTTL:           cacheTTL,
	}
}

func analyticsCacheKey(userID uuid.UUID) string {
	return "analytics:user:" + userID.String()
}

// Execute returns the user's analytics, served from cache when fresh.
func (uc *UserAnalyticsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*UserAnalytics, error) {
	key := analyticsCacheKey(userID)

	if uc.cache != nil {
		if raw, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
			var cached UserAnalytics
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		} else if err != nil {
			slog.Warn("Analytics cache read failed", "error", err)
		}
	}

	result, err := uc.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := uc.cache.Set(ctx, key, string(raw), uc.cacheTTL); err != nil {
				slog.Warn("Analytics cache write failed", "error", err)
			}
		}
	}
	return result, nil
}

// Invalidate drops the cached analytics for a user. Called after writes
// that change the underlying data.
func (uc *UserAnalyticsUseCase) Invalidate(ctx context.Context, userID uuid.UUID) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, analyticsCacheKey(userID)); err != nil {
		slog.Warn("Analytics cache invalidation failed", "error", err)
	}
}

func (uc *UserAnalyticsUseCase) compute(ctx context.Context, userID uuid.UUID) (*UserAnalytics, error) {
	dreams, err := uc.dreamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &UserAnalytics{
		TotalDreams:          int64(len(dreams)),
		MoodTrends:           []MoodCount{},
		TopSymbols:           []SymbolCount{},
		MoodSleepCorrelation: []MoodSleep{},
		GeneratedAt:          time.Now().UTC(),
	}
	if len(dreams) == 0 {
		return result, nil
	}

	moodCounts := make(map[entity.Mood]int)
	moodSleepSum := make(map[entity.Mood]int)
	sleepSum := 0
	ids := make([]uuid.UUID, len(dreams))
	for i, d := range dreams {
		ids[i] = d.ID
		moodCounts[d.MoodAtWake]++
		moodSleepSum[d.MoodAtWake] += d.SleepQuality
		sleepSum += d.SleepQuality
	}

	result.AverageSleepQuality = round2(float64(sleepSum) / float64(len(dreams)))

	for mood, count := range moodCounts {
		result.MoodTrends = append(result.MoodTrends, MoodCount{Mood: mood, Count: count})
		result.MoodSleepCorrelation = append(result.MoodSleepCorrelation, MoodSleep{
			Mood:                mood,
			AverageSleepQuality: round2(float64(moodSleepSum[mood]) / float64(count)),
		})
	}
	sort.Slice(result.MoodTrends, func(i, j int) bool {
		if result.MoodTrends[i].Count != result.MoodTrends[j].Count {
			return result.MoodTrends[i].Count > result.MoodTrends[j].Count
		}
		return result.MoodTrends[i].Mood < result.MoodTrends[j].Mood
	})
	sort.Slice(result.MoodSleepCorrelation, func(i, j int) bool {
		return result.MoodSleepCorrelation[i].Mood < result.MoodSleepCorrelation[j].Mood
	})
	result.MostCommonMood = result.MoodTrends[0].Mood

	interpretations, err := uc.interpretationRepo.FindByDreams(ctx, ids)
	if err != nil {
		return nil, err
	}
	result.TopSymbols = topSymbols(interpretations, topSymbolLimit)

	return result, nil
}

// topSymbols counts comma-separated symbols across interpretations and
// returns the most frequent ones.
func topSymbols(interpretations []*entity.Interpretation, limit int) []SymbolCount {
	counts := make(map[string]int)
	for _, in := range interpretations {
		for _, raw := range strings.Split(in.Symbols, ",") {
			symbol := strings.ToLower(strings.TrimSpace(raw))
			if symbol == "" {
				continue
			}
			counts[symbol]++
		}
	}

	out := make([]SymbolCount, 0, len(counts))
	for symbol, count := range counts {
		out = append(out, SymbolCount{Symbol: symbol, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Symbol < out[j].Symbol
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
