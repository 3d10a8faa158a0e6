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

// refreshTokenRepository implements the adapter.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository instance.
func NewRefreshTokenRepository(db *gorm.DB) adapter.RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

// FindByToken retrieves a refresh token by its opaque token string.
func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshTokenModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTokenNotFound
		}
		return nil, result.Error
	}
	return tokenModel.ToEntity(), nil
}

// Save persists a new refresh token.
func (r *refreshTokenRepository) Save(ctx context.Context, token *entity.RefreshToken) error {
	result := r.db.WithContext(ctx).Create(model.RefreshTokenFromEntity(token))
	return result.Error
}

// Replace deletes all refresh tokens for the user and persists the
// given one, in a single transaction.
func (r *refreshTokenRepository) Replace(ctx context.Context, token *entity.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&model.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model.RefreshTokenFromEntity(token)).Error
	})
}

// Delete removes a refresh token by its token string.
func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.RefreshTokenModel{})
	return result.Error
}

// DeleteByUser removes all refresh tokens for the given user.
func (r *refreshTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{})
	return result.Error
}

// DeleteExpiredBefore removes tokens whose expiry passed before the cutoff.
func (r *refreshTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&model.RefreshTokenModel{})
	return result.RowsAffected, result.Error
}

// CountByUser returns the number of stored tokens for the user.
func (r *refreshTokenRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).Where("user_id = ?", userID).Count(&count)
	return count, result.Error
}
