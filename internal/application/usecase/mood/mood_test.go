package mood

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

type fakeMoodRepo struct {
	entries map[uuid.UUID]*entity.MoodEntry
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{entries: make(map[uuid.UUID]*entity.MoodEntry)}
}

func (r *fakeMoodRepo) Create(_ context.Context, entry *entity.MoodEntry) error {
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeMoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domainerror.NewDreamError(domainerror.ErrCodeMoodEntryNotFound, "mood entry not found", domainerror.ErrMoodEntryNotFound)
	}
	cp := *e
	return &cp, nil
}

func (r *fakeMoodRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.EntryDate.Equal(date) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domainerror.NewDreamError(domainerror.ErrCodeMoodEntryNotFound, "mood entry not found", domainerror.ErrMoodEntryNotFound)
}

func (r *fakeMoodRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.MoodEntry, error) {
	var out []*entity.MoodEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (r *fakeMoodRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodEntry, error) {
	var out []*entity.MoodEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.EntryDate.Before(from) && !e.EntryDate.After(to) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (r *fakeMoodRepo) Update(_ context.Context, entry *entity.MoodEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrMoodEntryNotFound
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeMoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeMoodRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for id, e := range r.entries {
		if e.UserID == userID {
			delete(r.entries, id)
		}
	}
	return nil
}

func TestLogMoodUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("creates an entry for a new date", func(t *testing.T) {
		repo := newFakeMoodRepo()
		uc := NewLogMoodUseCase(repo)

		entry, err := uc.Execute(context.Background(), userID, LogMoodInput{
			EntryDate: day, Mood: "HAPPY", Notes: "good day", Triggers: "sunshine",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Mood != entity.MoodHappy || entry.Notes != "good day" {
			t.Error("unexpected entry contents")
		}
	})

	t.Run("overwrites the entry for the same date", func(t *testing.T) {
		repo := newFakeMoodRepo()
		uc := NewLogMoodUseCase(repo)

		first, err := uc.Execute(context.Background(), userID, LogMoodInput{EntryDate: day, Mood: "HAPPY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Same calendar date at a different clock time.
		second, err := uc.Execute(context.Background(), userID, LogMoodInput{
			EntryDate: day.Add(9 * time.Hour), Mood: "ANXIOUS", Notes: "rough evening",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID != first.ID {
			t.Error("expected the existing entry to be updated, not a new one")
		}
		all, _ := repo.FindByUser(context.Background(), userID)
		if len(all) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(all))
		}
		if all[0].Mood != entity.MoodAnxious {
			t.Error("expected the stored mood to be overwritten")
		}
	})

	t.Run("rejects an unknown mood", func(t *testing.T) {
		uc := NewLogMoodUseCase(newFakeMoodRepo())
		_, err := uc.Execute(context.Background(), userID, LogMoodInput{EntryDate: day, Mood: "MEH"})
		var dreamErr *domainerror.DreamError
		if !errors.As(err, &dreamErr) || dreamErr.Code != domainerror.ErrCodeInvalidMood {
			t.Fatalf("expected invalid mood error, got %v", err)
		}
	})
}

func TestListMoodsUseCase(t *testing.T) {
	userID := uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC) }

	repo := newFakeMoodRepo()
	log := NewLogMoodUseCase(repo)
	for d, mood := range map[int]string{1: "SAD", 5: "HAPPY", 9: "NEUTRAL"} {
		if _, err := log.Execute(context.Background(), userID, LogMoodInput{EntryDate: day(d), Mood: mood}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	uc := NewListMoodsUseCase(repo)

	t.Run("lists newest first", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(out))
		}
		if !out[0].EntryDate.Equal(day(9)) {
			t.Error("expected newest entry first")
		}
	})

	t.Run("range is inclusive on both ends", func(t *testing.T) {
		out, err := uc.Range(context.Background(), userID, day(1), day(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out))
		}
	})
}

func TestDeleteMoodUseCase(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("removes an owned entry", func(t *testing.T) {
		repo := newFakeMoodRepo()
		entry, err := NewLogMoodUseCase(repo).Execute(context.Background(), userID, LogMoodInput{EntryDate: day, Mood: "HAPPY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := NewDeleteMoodUseCase(repo).Execute(context.Background(), userID, entry.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(context.Background(), entry.ID); err == nil {
			t.Fatal("expected the entry to be gone")
		}
	})

	t.Run("hides another user's entry", func(t *testing.T) {
		repo := newFakeMoodRepo()
		entry, err := NewLogMoodUseCase(repo).Execute(context.Background(), uuid.New(), LogMoodInput{EntryDate: day, Mood: "HAPPY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err = NewDeleteMoodUseCase(repo).Execute(context.Background(), userID, entry.ID)
		var dreamErr *domainerror.DreamError
		if !errors.As(err, &dreamErr) || dreamErr.Code != domainerror.ErrCodeMoodEntryNotFound {
			t.Fatalf("expected mood entry not found, got %v", err)
		}
	})
}

func TestUpdateMoodUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, repo *fakeMoodRepo) *entity.MoodEntry {
		t.Helper()
		entry, err := NewLogMoodUseCase(repo).Execute(context.Background(), userID, LogMoodInput{
			EntryDate: day,
			Mood:      "NEUTRAL",
			Notes:     "quiet day",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return entry
	}

	t.Run("changes only the given fields", func(t *testing.T) {
		repo := newFakeMoodRepo()
		entry := seed(t, repo)

		mood := "PEACEFUL"
		triggers := "evening walk"
		updated, err := NewUpdateMoodUseCase(repo).Execute(context.Background(), userID, entry.ID, UpdateMoodInput{
			Mood:     &mood,
			Triggers: &triggers,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Mood != entity.MoodPeaceful {
			t.Fatalf("expected PEACEFUL, got %s", updated.Mood)
		}
		if updated.Notes != "quiet day" {
			t.Fatalf("notes changed unexpectedly: %q", updated.Notes)
		}
		if updated.Triggers != triggers {
			t.Fatalf("expected triggers %q, got %q", triggers, updated.Triggers)
		}
		if !updated.EntryDate.Equal(day) {
			t.Fatalf("entry date changed: %v", updated.EntryDate)
		}
	})

	t.Run("rejects an unknown mood without persisting", func(t *testing.T) {
		repo := newFakeMoodRepo()
		entry := seed(t, repo)

		mood := "GRUMPY"
		_, err := NewUpdateMoodUseCase(repo).Execute(context.Background(), userID, entry.ID, UpdateMoodInput{Mood: &mood})
		var dreamErr *domainerror.DreamError
		if !errors.As(err, &dreamErr) || dreamErr.Code != domainerror.ErrCodeInvalidMood {
			t.Fatalf("expected invalid mood, got %v", err)
		}
		stored, err := repo.FindByID(context.Background(), entry.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Mood != entity.MoodNeutral {
			t.Fatalf("mood persisted despite validation failure: %s", stored.Mood)
		}
	})

	t.Run("hides another user's entry", func(t *testing.T) {
		repo := newFakeMoodRepo()
		entry := seed(t, repo)

		notes := "not yours"
		_, err := NewUpdateMoodUseCase(repo).Execute(context.Background(), uuid.New(), entry.ID, UpdateMoodInput{Notes: &notes})
		var dreamErr *domainerror.DreamError
		if !errors.As(err, &dreamErr) || dreamErr.Code != domainerror.ErrCodeMoodEntryNotFound {
			t.Fatalf("expected mood entry not found, got %v", err)
		}
	})
}
