package analytics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// Fakes embed the adapter interface so only the methods a test exercises
// need an implementation.

type fakeDreamRepo struct {
	adapter.DreamRepository
	dreams  []*entity.Dream
	flagged int64
}

func (r *fakeDreamRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Dream, error) {
	return r.dreams, nil
}

func (r *fakeDreamRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.dreams)), nil
}

func (r *fakeDreamRepo) CountFlagged(_ context.Context) (int64, error) {
	return r.flagged, nil
}

type fakeInterpretationRepo struct {
	adapter.InterpretationRepository
	interpretations []*entity.Interpretation
}

func (r *fakeInterpretationRepo) FindByDreams(_ context.Context, _ []uuid.UUID) ([]*entity.Interpretation, error) {
	return r.interpretations, nil
}

func (r *fakeInterpretationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.interpretations)), nil
}

type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	gets   int
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func dreamWith(userID uuid.UUID, mood entity.Mood, sleepQuality int) *entity.Dream {
	return entity.NewDream(userID, "t", "d", mood, sleepQuality, time.Now().UTC())
}

func interpretationWith(dreamID uuid.UUID, symbols string) *entity.Interpretation {
	in := entity.NewInterpretation(dreamID)
	in.Symbols = symbols
	return in
}

func TestUserAnalyticsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("computes mood trends and sleep averages", func(t *testing.T) {
		d1 := dreamWith(userID, entity.MoodHappy, 4)
		d2 := dreamWith(userID, entity.MoodHappy, 2)
		d3 := dreamWith(userID, entity.MoodAnxious, 3)
		dreamRepo := &fakeDreamRepo{dreams: []*entity.Dream{d1, d2, d3}}
		interpRepo := &fakeInterpretationRepo{interpretations: []*entity.Interpretation{
			interpretationWith(d1.ID, "water, Falling"),
			interpretationWith(d2.ID, "water"),
			interpretationWith(d3.ID, "teeth"),
		}}

		uc := NewUserAnalyticsUseCase(dreamRepo, interpRepo, nil, time.Minute)
		out, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalDreams != 3 {
			t.Errorf("expected 3 dreams, got %d", out.TotalDreams)
		}
		if out.AverageSleepQuality != 3 {
			t.Errorf("expected average sleep quality 3, got %v", out.AverageSleepQuality)
		}
		if out.MostCommonMood != entity.MoodHappy {
			t.Errorf("expected HAPPY as most common mood, got %s", out.MostCommonMood)
		}
		if len(out.MoodTrends) != 2 || out.MoodTrends[0].Count != 2 {
			t.Errorf("unexpected mood trends: %+v", out.MoodTrends)
		}
		if len(out.TopSymbols) != 3 {
			t.Fatalf("expected 3 symbols, got %d", len(out.TopSymbols))
		}
		if out.TopSymbols[0].Symbol != "water" || out.TopSymbols[0].Count != 2 {
			t.Errorf("expected water to be the top symbol, got %+v", out.TopSymbols[0])
		}
		for _, ms := range out.MoodSleepCorrelation {
			if ms.Mood == entity.MoodHappy && ms.AverageSleepQuality != 3 {
				t.Errorf("expected average 3 for HAPPY, got %v", ms.AverageSleepQuality)
			}
		}
	})

	t.Run("handles a user with no dreams", func(t *testing.T) {
		uc := NewUserAnalyticsUseCase(&fakeDreamRepo{}, &fakeInterpretationRepo{}, nil, time.Minute)
		out, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalDreams != 0 || out.MostCommonMood != "" {
			t.Errorf("unexpected analytics for empty journal: %+v", out)
		}
	})

	t.Run("serves the second request from cache", func(t *testing.T) {
		d := dreamWith(userID, entity.MoodHappy, 4)
		dreamRepo := &fakeDreamRepo{dreams: []*entity.Dream{d}}
		cache := newFakeCache()
		uc := NewUserAnalyticsUseCase(dreamRepo, &fakeInterpretationRepo{}, cache, time.Minute)

		first, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected one cache write, got %d", cache.sets)
		}

		dreamRepo.dreams = append(dreamRepo.dreams, dreamWith(userID, entity.MoodSad, 1))
		second, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.TotalDreams != first.TotalDreams {
			t.Error("expected the cached result to be served")
		}

		uc.Invalidate(context.Background(), userID)
		third, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if third.TotalDreams != 2 {
			t.Errorf("expected recomputation after invalidation, got %d dreams", third.TotalDreams)
		}
	})
}

func TestTopSymbols(t *testing.T) {
	ins := []*entity.Interpretation{
		interpretationWith(uuid.New(), "a, b, c"),
		interpretationWith(uuid.New(), "b, c"),
		interpretationWith(uuid.New(), "c, , "),
	}
	out := topSymbols(ins, 2)
	if len(out) != 2 {
		t.Fatalf("expected the limit to apply, got %d", len(out))
	}
	if out[0].Symbol != "c" || out[0].Count != 3 {
		t.Errorf("unexpected top symbol: %+v", out[0])
	}
	if out[1].Symbol != "b" || out[1].Count != 2 {
		t.Errorf("unexpected second symbol: %+v", out[1])
	}
}
