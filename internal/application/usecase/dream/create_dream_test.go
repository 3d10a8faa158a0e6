package dream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

func assertDreamCode(t *testing.T, err error, code domainerror.DreamErrorCode) {
	t.Helper()
	var dreamErr *domainerror.DreamError
	if !errors.As(err, &dreamErr) {
		t.Fatalf("expected DreamError, got %v", err)
	}
	if dreamErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, dreamErr.Code)
	}
}

func TestCreateDreamUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	dreamDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	validInput := func() CreateDreamInput {
		return CreateDreamInput{
			Title:        "Flying over the sea",
			DreamText:    "I was flying over a calm sea at sunrise.",
			Tags:         []string{"flying", "sea"},
			MoodAtWake:   "PEACEFUL",
			SleepQuality: 4,
			DreamDate:    dreamDate,
		}
	}

	t.Run("persists the dream and stores an interpretation", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		interpreter := &fakeInterpreter{available: true, result: calmResult()}
		uc := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter))

		out, err := uc.Execute(context.Background(), userID, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Dream == nil || out.Dream.UserID != userID {
			t.Fatal("expected dream owned by the user")
		}
		if !out.Dream.IsPrivate {
			t.Error("expected dreams to default to private")
		}
		if out.Interpretation == nil {
			t.Fatal("expected an interpretation")
		}
		if out.Interpretation.HasRiskFlag {
			t.Error("expected no risk flag for a calm interpretation")
		}
		stored, err := interpRepo.FindByDream(context.Background(), out.Dream.ID)
		if err != nil {
			t.Fatalf("interpretation not persisted: %v", err)
		}
		if stored.ShortSummary != "A calm dream about water." {
			t.Errorf("unexpected summary %q", stored.ShortSummary)
		}
	})

	t.Run("keeps the dream when interpretation fails", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		interpreter := &fakeInterpreter{available: true, err: errors.New("model unavailable")}
		uc := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter))

		out, err := uc.Execute(context.Background(), userID, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Interpretation != nil {
			t.Error("expected nil interpretation on failure")
		}
		if _, err := dreamRepo.FindByID(context.Background(), out.Dream.ID); err != nil {
			t.Fatalf("dream should be persisted: %v", err)
		}
	})

	t.Run("flags the dream when the analysis reports a risk", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		risky := calmResult()
		risky.RiskFlags = "recurring nightmares, severe distress"
		interpreter := &fakeInterpreter{available: true, result: risky}
		uc := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter))

		out, err := uc.Execute(context.Background(), userID, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Interpretation.HasRiskFlag {
			t.Error("expected the risk flag to be set")
		}
		stored, err := dreamRepo.FindByID(context.Background(), out.Dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.IsFlagged {
			t.Error("expected the stored dream to be flagged")
		}
		if stored.FlagReason != risky.RiskFlags {
			t.Errorf("unexpected flag reason %q", stored.FlagReason)
		}
	})

	t.Run("rejects an unknown mood", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		uc := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, newFakeInterpretationRepo(), &fakeInterpreter{}))

		input := validInput()
		input.MoodAtWake = "ECSTATIC"
		_, err := uc.Execute(context.Background(), userID, input)
		assertDreamCode(t, err, domainerror.ErrCodeInvalidMood)
	})

	t.Run("rejects sleep quality outside 1 to 5", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		uc := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, newFakeInterpretationRepo(), &fakeInterpreter{}))

		input := validInput()
		input.SleepQuality = 6
		_, err := uc.Execute(context.Background(), userID, input)
		assertDreamCode(t, err, domainerror.ErrCodeInvalidSleepQuality)
	})
}

func TestInterpretDreamUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("replaces the stored interpretation", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		interpreter := &fakeInterpreter{available: true, result: calmResult()}
		create := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter))

		out, err := create.Execute(context.Background(), userID, CreateDreamInput{
			Title: "t", DreamText: "d", MoodAtWake: "NEUTRAL", SleepQuality: 3, DreamDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := out.Interpretation.ID

		reinterpret := NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter)
		second, err := reinterpret.Execute(context.Background(), userID, out.Dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID == first {
			t.Error("expected a new interpretation record")
		}
		stored, err := interpRepo.FindByDream(context.Background(), out.Dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID != second.ID {
			t.Error("expected the new interpretation to replace the old one")
		}
	})

	t.Run("rejects another user's dream", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpRepo := newFakeInterpretationRepo()
		interpreter := &fakeInterpreter{available: true, result: calmResult()}
		create := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter))

		out, err := create.Execute(context.Background(), userID, CreateDreamInput{
			Title: "t", DreamText: "d", MoodAtWake: "NEUTRAL", SleepQuality: 3, DreamDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewInterpretDreamUseCase(dreamRepo, interpRepo, interpreter)
		_, err = uc.Execute(context.Background(), uuid.New(), out.Dream.ID)
		assertDreamCode(t, err, domainerror.ErrCodeDreamNotFound)
	})

	t.Run("fails when the interpreter is not configured", func(t *testing.T) {
		dreamRepo := newFakeDreamRepo()
		interpreter := &fakeInterpreter{available: false}
		create := NewCreateDreamUseCase(dreamRepo, NewInterpretDreamUseCase(dreamRepo, newFakeInterpretationRepo(), interpreter))

		out, err := create.Execute(context.Background(), userID, CreateDreamInput{
			Title: "t", DreamText: "d", MoodAtWake: "NEUTRAL", SleepQuality: 3, DreamDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewInterpretDreamUseCase(dreamRepo, newFakeInterpretationRepo(), interpreter)
		if _, err := uc.Execute(context.Background(), userID, out.Dream.ID); err == nil {
			t.Fatal("expected an error")
		}
		if interpreter.calls != 0 {
			t.Error("expected the model not to be called")
		}
	})
}
