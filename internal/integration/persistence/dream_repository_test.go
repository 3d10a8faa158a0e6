package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

func TestDreamRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewDreamRepository(db)
	interpretations := NewInterpretationRepository(db)
	userID := uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

	newDream := func(title, text string, d int) *entity.Dream {
		dream := entity.NewDream(userID, title, text, entity.MoodNeutral, 3, day(d))
		dream.Tags = []string{"tag-a", "tag-b"}
		return dream
	}

	t.Run("create preserves tags through the array column", func(t *testing.T) {
		dream := newDream("Falling", "I was falling from a tower", 1)
		if err := repo.Create(ctx(), dream); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx(), dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found.Tags) != 2 || found.Tags[0] != "tag-a" {
			t.Errorf("unexpected tags: %v", found.Tags)
		}
	})

	t.Run("lists newest dream date first", func(t *testing.T) {
		if err := repo.Create(ctx(), newDream("Ocean", "calm waves", 9)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx(), newDream("Forest", "tall trees", 4)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dreams, err := repo.FindByUser(ctx(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dreams) != 3 {
			t.Fatalf("expected 3 dreams, got %d", len(dreams))
		}
		if dreams[0].Title != "Ocean" || dreams[2].Title != "Falling" {
			t.Errorf("unexpected order: %s, %s, %s", dreams[0].Title, dreams[1].Title, dreams[2].Title)
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		dreams, err := repo.FindByUserAndDateRange(ctx(), userID, day(1), day(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dreams) != 2 {
			t.Fatalf("expected 2 dreams, got %d", len(dreams))
		}
	})

	t.Run("search matches title and text", func(t *testing.T) {
		dreams, err := repo.Search(ctx(), userID, "tower")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dreams) != 1 || dreams[0].Title != "Falling" {
			t.Errorf("unexpected search result: %+v", dreams)
		}

		dreams, err = repo.Search(ctx(), uuid.New(), "tower")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dreams) != 0 {
			t.Error("expected no matches for another user")
		}
	})

	t.Run("flagging is visible in flagged listing and counts", func(t *testing.T) {
		dreams, err := repo.FindByUser(ctx(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dream := dreams[0]
		dream.Flag("severe distress")
		if err := repo.Update(ctx(), dream); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		flagged, err := repo.FindFlagged(ctx())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(flagged) != 1 || flagged[0].ID != dream.ID {
			t.Errorf("unexpected flagged dreams: %+v", flagged)
		}
		count, err := repo.CountFlagged(ctx())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 flagged dream, got %d", count)
		}
	})

	t.Run("delete removes the interpretation too", func(t *testing.T) {
		dream := newDream("Short", "short dream", 12)
		if err := repo.Create(ctx(), dream); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := entity.NewInterpretation(dream.ID)
		in.ShortSummary = "summary"
		if err := interpretations.Save(ctx(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx(), dream.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx(), dream.ID); !errors.Is(err, domainerror.ErrDreamNotFound) {
			t.Fatalf("expected dream not found, got %v", err)
		}
		if _, err := interpretations.FindByDream(ctx(), dream.ID); !errors.Is(err, domainerror.ErrInterpretationNotFound) {
			t.Fatalf("expected interpretation not found, got %v", err)
		}
	})
}

func TestInterpretationRepository(t *testing.T) {
	db := setupDB(t)
	dreams := NewDreamRepository(db)
	repo := NewInterpretationRepository(db)
	userID := uuid.New()

	dream := entity.NewDream(userID, "t", "d", entity.MoodNeutral, 3, time.Now().UTC())
	if err := dreams.Create(ctx(), dream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("save replaces the previous interpretation", func(t *testing.T) {
		first := entity.NewInterpretation(dream.ID)
		first.ShortSummary = "first"
		if err := repo.Save(ctx(), first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := entity.NewInterpretation(dream.ID)
		second.ShortSummary = "second"
		if err := repo.Save(ctx(), second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByDream(ctx(), dream.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != second.ID || found.ShortSummary != "second" {
			t.Errorf("expected the replacement, got %+v", found)
		}
		count, err := repo.Count(ctx())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 interpretation, got %d", count)
		}
	})

	t.Run("find by dreams handles an empty id list", func(t *testing.T) {
		out, err := repo.FindByDreams(ctx(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("expected no interpretations, got %d", len(out))
		}
	})
}

func TestMoodEntryRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewMoodEntryRepository(db)
	userID := uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

	t.Run("find by user and date", func(t *testing.T) {
		entry := entity.NewMoodEntry(userID, day(1), entity.MoodHappy)
		entry.Notes = "good"
		if err := repo.Create(ctx(), entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByUserAndDate(ctx(), userID, day(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Mood != entity.MoodHappy || found.Notes != "good" {
			t.Errorf("unexpected entry: %+v", found)
		}

		if _, err := repo.FindByUserAndDate(ctx(), userID, day(2)); !errors.Is(err, domainerror.ErrMoodEntryNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("range and ordering", func(t *testing.T) {
		for d := 3; d <= 6; d++ {
			if err := repo.Create(ctx(), entity.NewMoodEntry(userID, day(d), entity.MoodNeutral)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		entries, err := repo.FindByUserAndDateRange(ctx(), userID, day(3), day(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		if !entries[0].EntryDate.After(entries[2].EntryDate) {
			t.Error("expected newest entry first")
		}
	})

	t.Run("delete by user", func(t *testing.T) {
		if err := repo.DeleteByUser(ctx(), userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entries, err := repo.FindByUser(ctx(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})
}

func TestSupportRepositories(t *testing.T) {
	db := setupDB(t)
	tickets := NewSupportTicketRepository(db)
	settings := NewSystemSettingsRepository(db)
	userID := uuid.New()

	t.Run("ticket lifecycle", func(t *testing.T) {
		ticket := entity.NewSupportTicket(userID, "Subject", "Message")
		if err := tickets.Create(ctx(), ticket); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ticket.Reply("We are looking into it.")
		if err := tickets.Update(ctx(), ticket); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := tickets.FindByID(ctx(), ticket.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Status != entity.TicketStatusInProgress || found.RepliedAt == nil {
			t.Errorf("unexpected ticket: %+v", found)
		}

		open, err := tickets.CountByStatus(ctx(), entity.TicketStatusOpen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if open != 0 {
			t.Errorf("expected no open tickets, got %d", open)
		}

		byStatus, err := tickets.FindByStatus(ctx(), entity.TicketStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(byStatus) != 1 {
			t.Errorf("expected 1 in-progress ticket, got %d", len(byStatus))
		}
	})

	t.Run("settings save is an upsert by key", func(t *testing.T) {
		setting := entity.NewSystemSetting("app.name", "DreamWell", "Application display name")
		if err := settings.Save(ctx(), setting); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		setting.Value = "DreamWell Beta"
		if err := settings.Save(ctx(), setting); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := settings.FindByKey(ctx(), "app.name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Value != "DreamWell Beta" {
			t.Errorf("unexpected value %q", found.Value)
		}

		if _, err := settings.FindByKey(ctx(), "missing"); !errors.Is(err, domainerror.ErrSettingNotFound) {
			t.Fatalf("expected setting not found, got %v", err)
		}
	})
}
