package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/persistence/model"
)

// supportTicketRepository implements the adapter.SupportTicketRepository interface.
type supportTicketRepository struct {
	db *gorm.DB
}

// NewSupportTicketRepository creates a new support ticket repository instance.
func NewSupportTicketRepository(db *gorm.DB) adapter.SupportTicketRepository {
	return &supportTicketRepository{
		db: db,
	}
}

// Create persists a new ticket.
func (r *supportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	result := r.db.WithContext(ctx).Create(model.SupportTicketFromEntity(ticket))
	return result.Error
}

// FindByID retrieves a ticket by its ID.
func (r *supportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	var ticketModel model.SupportTicketModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ticketModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTicketNotFound
		}
		return nil, result.Error
	}
	return ticketModel.ToEntity(), nil
}

// FindByUser retrieves all tickets of a user, newest first.
func (r *supportTicketRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	var models []model.SupportTicketModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTicketEntities(models), nil
}

// FindAll retrieves all tickets, newest first.
func (r *supportTicketRepository) FindAll(ctx context.Context) ([]*entity.SupportTicket, error) {
	var models []model.SupportTicketModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTicketEntities(models), nil
}

// FindByStatus retrieves all tickets with the given status, newest first.
func (r *supportTicketRepository) FindByStatus(ctx context.Context, status entity.TicketStatus) ([]*entity.SupportTicket, error) {
	var models []model.SupportTicketModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTicketEntities(models), nil
}

// Update replaces the stored record for an existing ticket.
func (r *supportTicketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	result := r.db.WithContext(ctx).Save(model.SupportTicketFromEntity(ticket))
	return result.Error
}

// DeleteByUser removes all tickets of a user.
func (r *supportTicketRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SupportTicketModel{})
	return result.Error
}

// CountByStatus returns the number of tickets with the given status.
func (r *supportTicketRepository) CountByStatus(ctx context.Context, status entity.TicketStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SupportTicketModel{}).
		Where("status = ?", string(status)).
		Count(&count)
	return count, result.Error
}

func toTicketEntities(models []model.SupportTicketModel) []*entity.SupportTicket {
	tickets := make([]*entity.SupportTicket, len(models))
	for i := range models {
		tickets[i] = models[i].ToEntity()
	}
	return tickets
}

// systemSettingsRepository implements the adapter.SystemSettingsRepository interface.
type systemSettingsRepository struct {
	db *gorm.DB
}

// NewSystemSettingsRepository creates a new system settings repository instance.
func NewSystemSettingsRepository(db *gorm.DB) adapter.SystemSettingsRepository {
	return &systemSettingsRepository{
		db: db,
	}
}

// FindByKey retrieves a setting by its key.
func (r *systemSettingsRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	var settingModel model.SystemSettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// Save persists a setting, replacing an existing one with the same key.
func (r *systemSettingsRepository) Save(ctx context.Context, setting *entity.SystemSetting) error {
	result := r.db.WithContext(ctx).Save(model.SystemSettingFromEntity(setting))
	return result.Error
}
