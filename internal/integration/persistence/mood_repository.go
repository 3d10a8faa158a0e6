package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/persistence/model"
)

// moodEntryRepository implements the adapter.MoodEntryRepository interface.
type moodEntryRepository struct {
	db *gorm.DB
}

// NewMoodEntryRepository creates a new mood entry repository instance.
func NewMoodEntryRepository(db *gorm.DB) adapter.MoodEntryRepository {
	return &moodEntryRepository{
		db: db,
	}
}

func moodEntryNotFound() error {
	return domainerror.NewDreamError(
		domainerror.ErrCodeMoodEntryNotFound,
		"mood entry not found",
		domainerror.ErrMoodEntryNotFound,
	)
}

// Create persists a new mood entry.
func (r *moodEntryRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	result := r.db.WithContext(ctx).Create(model.MoodEntryFromEntity(entry))
	return result.Error
}

// FindByID retrieves a mood entry by its ID.
func (r *moodEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	var entryModel model.MoodEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, moodEntryNotFound()
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserAndDate retrieves the user's entry for a calendar date.
func (r *moodEntryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error) {
	var entryModel model.MoodEntryModel
	result := r.db.WithContext(ctx).Where("user_id = ? AND entry_date = ?", userID, date).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, moodEntryNotFound()
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUser retrieves all entries of a user, newest entry date first.
func (r *moodEntryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MoodEntry, error) {
	var models []model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMoodEntities(models), nil
}

// FindByUserAndDateRange retrieves a user's entries within [from, to].
func (r *moodEntryRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodEntry, error) {
	var models []model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, from, to).
		Order("entry_date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMoodEntities(models), nil
}

// Update replaces the stored record for an existing entry.
func (r *moodEntryRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	result := r.db.WithContext(ctx).Save(model.MoodEntryFromEntity(entry))
	return result.Error
}

// Delete removes a mood entry.
func (r *moodEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MoodEntryModel{}, "id = ?", id)
	return result.Error
}

// DeleteByUser removes all mood entries of a user.
func (r *moodEntryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.MoodEntryModel{})
	return result.Error
}

func toMoodEntities(models []model.MoodEntryModel) []*entity.MoodEntry {
	entries := make([]*entity.MoodEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries
}
