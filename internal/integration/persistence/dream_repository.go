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

// dreamRepository implements the adapter.DreamRepository interface.
type dreamRepository struct {
	db *gorm.DB
}

// NewDreamRepository creates a new dream repository instance.
func NewDreamRepository(db *gorm.DB) adapter.DreamRepository {
	return &dreamRepository{
		db: db,
	}
}

// Create persists a new dream.
func (r *dreamRepository) Create(ctx context.Context, dream *entity.Dream) error {
	result := r.db.WithContext(ctx).Create(model.DreamFromEntity(dream))
	return result.Error
}

// FindByID retrieves a dream by its ID.
func (r *dreamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dream, error) {
	var dreamModel model.DreamModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&dreamModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewDreamError(
				domainerror.ErrCodeDreamNotFound,
				"dream not found",
				domainerror.ErrDreamNotFound,
			)
		}
		return nil, result.Error
	}
	return dreamModel.ToEntity(), nil
}

// FindByUser retrieves all dreams of a user, newest dream date first.
func (r *dreamRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Dream, error) {
	var models []model.DreamModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("dream_date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDreamEntities(models), nil
}

// FindByUserAndDateRange retrieves a user's dreams within [from, to].
func (r *dreamRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Dream, error) {
	var models []model.DreamModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND dream_date >= ? AND dream_date <= ?", userID, from, to).
		Order("dream_date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDreamEntities(models), nil
}

// Search retrieves a user's dreams whose title or text contains the keyword.
func (r *dreamRepository) Search(ctx context.Context, userID uuid.UUID, keyword string) ([]*entity.Dream, error) {
	pattern := "%" + keyword + "%"
	var models []model.DreamModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND (title LIKE ? OR dream_text LIKE ?)", userID, pattern, pattern).
		Order("dream_date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDreamEntities(models), nil
}

// FindFlagged retrieves all dreams flagged for review, newest first.
func (r *dreamRepository) FindFlagged(ctx context.Context) ([]*entity.Dream, error) {
	var models []model.DreamModel
	result := r.db.WithContext(ctx).
		Where("is_flagged = ?", true).
		Order("updated_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDreamEntities(models), nil
}

// Update replaces the stored record for an existing dream.
func (r *dreamRepository) Update(ctx context.Context, dream *entity.Dream) error {
	result := r.db.WithContext(ctx).Save(model.DreamFromEntity(dream))
	return result.Error
}

// Delete removes a dream and its interpretation.
func (r *dreamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dream_id = ?", id).Delete(&model.InterpretationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.DreamModel{}, "id = ?", id).Error
	})
}

// DeleteByUser removes all dreams of a user and their interpretations.
func (r *dreamRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&model.DreamModel{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("dream_id IN (?)", subquery).Delete(&model.InterpretationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.DreamModel{}).Error
	})
}

// CountByUser returns the number of dreams logged by the user.
func (r *dreamRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.DreamModel{}).Where("user_id = ?", userID).Count(&count)
	return count, result.Error
}

// Count returns the total number of dreams.
func (r *dreamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.DreamModel{}).Count(&count)
	return count, result.Error
}

// CountFlagged returns the number of flagged dreams.
func (r *dreamRepository) CountFlagged(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.DreamModel{}).Where("is_flagged = ?", true).Count(&count)
	return count, result.Error
}

func toDreamEntities(models []model.DreamModel) []*entity.Dream {
	dreams := make([]*entity.Dream, len(models))
	for i := range models {
		dreams[i] = models[i].ToEntity()
	}
	return dreams
}

// interpretationRepository implements the adapter.InterpretationRepository interface.
type interpretationRepository struct {
	db *gorm.DB
}

// NewInterpretationRepository creates a new interpretation repository instance.
func NewInterpretationRepository(db *gorm.DB) adapter.InterpretationRepository {
	return &interpretationRepository{
		db: db,
	}
}

// Save persists the interpretation, replacing a previous one for the
// same dream.
func (r *interpretationRepository) Save(ctx context.Context, interpretation *entity.Interpretation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dream_id = ?", interpretation.DreamID).Delete(&model.InterpretationModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model.InterpretationFromEntity(interpretation)).Error
	})
}

// FindByDream retrieves the interpretation for a dream.
func (r *interpretationRepository) FindByDream(ctx context.Context, dreamID uuid.UUID) (*entity.Interpretation, error) {
	var interpretationModel model.InterpretationModel
	result := r.db.WithContext(ctx).Where("dream_id = ?", dreamID).First(&interpretationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewDreamError(
				domainerror.ErrCodeInterpretationNotFound,
				"interpretation not found",
				domainerror.ErrInterpretationNotFound,
			)
		}
		return nil, result.Error
	}
	return interpretationModel.ToEntity(), nil
}

// FindByDreams retrieves interpretations for the given dreams.
func (r *interpretationRepository) FindByDreams(ctx context.Context, dreamIDs []uuid.UUID) ([]*entity.Interpretation, error) {
	if len(dreamIDs) == 0 {
		return nil, nil
	}
	var models []model.InterpretationModel
	result := r.db.WithContext(ctx).Where("dream_id IN ?", dreamIDs).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	interpretations := make([]*entity.Interpretation, len(models))
	for i := range models {
		interpretations[i] = models[i].ToEntity()
	}
	return interpretations, nil
}

// Count returns the total number of interpretations.
func (r *interpretationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.InterpretationModel{}).Count(&count)
	return count, result.Error
}
