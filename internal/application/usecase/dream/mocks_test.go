package dream

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

type fakeDreamRepo struct {
	dreams map[uuid.UUID]*entity.Dream
}

func newFakeDreamRepo() *fakeDreamRepo {
	return &fakeDreamRepo{dreams: make(map[uuid.UUID]*entity.Dream)}
}

func (r *fakeDreamRepo) Create(_ context.Context, dream *entity.Dream) error {
	cp := *dream
	r.dreams[dream.ID] = &cp
	return nil
}

func (r *fakeDreamRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Dream, error) {
	d, ok := r.dreams[id]
	if !ok {
		return nil, domainerror.NewDreamError(domainerror.ErrCodeDreamNotFound, "dream not found", domainerror.ErrDreamNotFound)
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDreamRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Dream, error) {
	var out []*entity.Dream
	for _, d := range r.dreams {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DreamDate.After(out[j].DreamDate) })
	return out, nil
}

func (r *fakeDreamRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Dream, error) {
	var out []*entity.Dream
	for _, d := range r.dreams {
		if d.UserID == userID && !d.DreamDate.Before(from) && !d.DreamDate.After(to) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DreamDate.After(out[j].DreamDate) })
	return out, nil
}

func (r *fakeDreamRepo) Search(_ context.Context, userID uuid.UUID, keyword string) ([]*entity.Dream, error) {
	kw := strings.ToLower(keyword)
	var out []*entity.Dream
	for _, d := range r.dreams {
		if d.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(d.Title), kw) || strings.Contains(strings.ToLower(d.DreamText), kw) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DreamDate.After(out[j].DreamDate) })
	return out, nil
}

func (r *fakeDreamRepo) FindFlagged(_ context.Context) ([]*entity.Dream, error) {
	var out []*entity.Dream
	for _, d := range r.dreams {
		if d.IsFlagged {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDreamRepo) Update(_ context.Context, dream *entity.Dream) error {
	if _, ok := r.dreams[dream.ID]; !ok {
		return domainerror.ErrDreamNotFound
	}
	cp := *dream
	r.dreams[dream.ID] = &cp
	return nil
}

func (r *fakeDreamRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.dreams, id)
	return nil
}

func (r *fakeDreamRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for id, d := range r.dreams {
		if d.UserID == userID {
			delete(r.dreams, id)
		}
	}
	return nil
}

func (r *fakeDreamRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, d := range r.dreams {
		if d.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeDreamRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.dreams)), nil
}

func (r *fakeDreamRepo) CountFlagged(_ context.Context) (int64, error) {
	var n int64
	for _, d := range r.dreams {
		if d.IsFlagged {
			n++
		}
	}
	return n, nil
}

type fakeInterpretationRepo struct {
	byDream map[uuid.UUID]*entity.Interpretation
}

func newFakeInterpretationRepo() *fakeInterpretationRepo {
	return &fakeInterpretationRepo{byDream: make(map[uuid.UUID]*entity.Interpretation)}
}

func (r *fakeInterpretationRepo) Save(_ context.Context, in *entity.Interpretation) error {
	cp := *in
	r.byDream[in.DreamID] = &cp
	return nil
}

func (r *fakeInterpretationRepo) FindByDream(_ context.Context, dreamID uuid.UUID) (*entity.Interpretation, error) {
	in, ok := r.byDream[dreamID]
	if !ok {
		return nil, domainerror.NewDreamError(domainerror.ErrCodeInterpretationNotFound, "interpretation not found", domainerror.ErrInterpretationNotFound)
	}
	cp := *in
	return &cp, nil
}

func (r *fakeInterpretationRepo) FindByDreams(_ context.Context, dreamIDs []uuid.UUID) ([]*entity.Interpretation, error) {
	var out []*entity.Interpretation
	for _, id := range dreamIDs {
		if in, ok := r.byDream[id]; ok {
			cp := *in
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInterpretationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byDream)), nil
}

type fakeInterpreter struct {
	available bool
	result    *adapter.InterpretationResult
	err       error
	calls     int
}

func (f *fakeInterpreter) IsAvailable() bool { return f.available }

func (f *fakeInterpreter) Interpret(_ context.Context, _ string, _ entity.Mood, _ int) (*adapter.InterpretationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func calmResult() *adapter.InterpretationResult {
	return &adapter.InterpretationResult{
		ShortSummary:        "A calm dream about water.",
		DetailedExplanation: "Water often symbolizes emotional state.",
		PredictedEmotions:   "calm, curious",
		WhyOccurred:         "Likely processing the day.",
		SuggestedActions:    "Keep a regular sleep schedule.",
		RiskFlags:           "none",
		Symbols:             "water, boat",
	}
}
