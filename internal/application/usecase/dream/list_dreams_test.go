package dream

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

func seedDream(t *testing.T, repo *fakeDreamRepo, userID uuid.UUID, title, text string, date time.Time) *entity.Dream {
	t.Helper()
	dream := entity.NewDream(userID, title, text, entity.MoodNeutral, 3, date)
	if err := repo.Create(context.Background(), dream); err != nil {
		t.Fatalf("failed to seed dream: %v", err)
	}
	return dream
}

func TestListDreamsUseCase(t *testing.T) {
	userID := uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	t.Run("lists own dreams newest first with interpretations attached", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		old := seedDream(t, dreamRepo, userID, "old", "an old dream", day(1))
		recent := seedDream(t, dreamRepo, userID, "recent", "a recent dream", day(5))
		seedDream(t, dreamRepo, uuid.New(), "other", "someone else", day(3))

		in := entity.NewInterpretation(recent.ID)
		in.ShortSummary = "summary"
		if err := interpRepo.Save(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewListDreamsUseCase(dreamRepo, interpRepo)
		out, err := uc.Execute(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 dreams, got %d", len(out))
		}
		if out[0].Dream.ID != recent.ID || out[1].Dream.ID != old.ID {
			t.Error("expected newest dream first")
		}
		if out[0].Interpretation == nil || out[0].Interpretation.ShortSummary != "summary" {
			t.Error("expected the interpretation to be attached")
		}
		if out[1].Interpretation != nil {
			t.Error("expected no interpretation for the old dream")
		}
	})

	t.Run("searches title and text case-insensitively", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		seedDream(t, dreamRepo, userID, "Falling", "I was falling from a tower", day(1))
		seedDream(t, dreamRepo, userID, "Ocean", "waves and a TOWER in the distance", day(2))
		seedDream(t, dreamRepo, userID, "Forest", "walking in a forest", day(3))

		uc := NewListDreamsUseCase(dreamRepo, newFakeInterpretationRepo())
		out, err := uc.Search(context.Background(), userID, "tower")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(out))
		}
	})
}

func TestGetDreamUseCase(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns the dream with its interpretation", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		dream := seedDream(t, dreamRepo, userID, "t", "d", date)

		uc := NewGetDreamUseCase(dreamRepo, interpRepo)
		out, err := uc.Execute(context.Background(), userID, dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Dream.ID != dream.ID {
			t.Error("unexpected dream returned")
		}
		if out.Interpretation != nil {
			t.Error("expected nil interpretation when none is stored")
		}
	})

	t.Run("hides another user's dream", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, uuid.New(), "t", "d", date)

		uc := NewGetDreamUseCase(dreamRepo, newFakeInterpretationRepo())
		_, err := uc.Execute(context.Background(), userID, dream.ID)
		assertDreamCode(t, err, domainerror.ErrCodeDreamNotFound)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		uc := NewGetDreamUseCase(newFakeDreamRepo(), newFakeInterpretationRepo())
		_, err := uc.Execute(context.Background(), userID, uuid.New())
		assertDreamCode(t, err, domainerror.ErrCodeDreamNotFound)
	})
}

func TestUpdateDreamUseCase(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("applies only the provided fields", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, userID, "before", "text", date)

		newTitle := "after"
		quality := 5
		uc := NewUpdateDreamUseCase(dreamRepo)
		updated, err := uc.Execute(context.Background(), userID, dream.ID, UpdateDreamInput{
			Title:        &newTitle,
			SleepQuality: &quality,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "after" || updated.SleepQuality != 5 {
			t.Error("expected the provided fields to change")
		}
		if updated.DreamText != "text" || updated.MoodAtWake != entity.MoodNeutral {
			t.Error("expected untouched fields to be preserved")
		}
	})

	t.Run("rejects an invalid mood without persisting", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, userID, "t", "d", date)

		bad := "GREAT"
		uc := NewUpdateDreamUseCase(dreamRepo)
		_, err := uc.Execute(context.Background(), userID, dream.ID, UpdateDreamInput{MoodAtWake: &bad})
		assertDreamCode(t, err, domainerror.ErrCodeInvalidMood)

		stored, _ := dreamRepo.FindByID(context.Background(), dream.ID)
		if stored.MoodAtWake != entity.MoodNeutral {
			t.Error("expected the stored mood to be unchanged")
		}
	})

	t.Run("hides another user's dream", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, uuid.New(), "t", "d", date)

		title := "x"
		uc := NewUpdateDreamUseCase(dreamRepo)
		_, err := uc.Execute(context.Background(), userID, dream.ID, UpdateDreamInput{Title: &title})
		assertDreamCode(t, err, domainerror.ErrCodeDreamNotFound)
	})
}

func TestDeleteDreamUseCase(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("removes an owned dream", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, userID, "t", "d", date)

		uc := NewDeleteDreamUseCase(dreamRepo)
		if err := uc.Execute(context.Background(), userID, dream.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := dreamRepo.FindByID(context.Background(), dream.ID); err == nil {
			t.Fatal("expected the dream to be gone")
		}
	})

	t.Run("hides another user's dream", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		dream := seedDream(t, dreamRepo, uuid.New(), "t", "d", date)

		uc := NewDeleteDreamUseCase(dreamRepo)
		err := uc.Execute(context.Background(), userID, dream.ID)
		assertDreamCode(t, err, domainerror.ErrCodeDreamNotFound)

		if _, err := dreamRepo.FindByID(context.Background(), dream.ID); err != nil {
			t.Fatal("expected the dream to remain")
		}
	})
}
