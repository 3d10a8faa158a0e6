// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                    string     `gorm:"type:varchar(100);not null"`
	Email                   string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash            string     `gorm:"type:varchar(255);not null"`
	Role                    string     `gorm:"type:varchar(20);not null;default:'USER'"`
	IsActive                bool       `gorm:"default:true"`
	IsEmailVerified         bool       `gorm:"default:false"`
	EmailVerificationToken  *string    `gorm:"type:varchar(255);index"`
	EmailVerificationExpiry *time.Time `gorm:"type:timestamptz"`
	PasswordResetToken      *string    `gorm:"type:varchar(255);index"`
	PasswordResetExpiry     *time.Time `gorm:"type:timestamptz"`
	Theme                   string     `gorm:"type:varchar(10);default:'light'"`
	NotificationsEnabled    bool       `gorm:"default:true"`
	Language                string     `gorm:"type:varchar(10);default:'en'"`
	CreatedAt               time.Time  `gorm:"not null"`
	UpdatedAt               time.Time  `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                      m.ID,
		Name:                    m.Name,
		Email:                   m.Email,
		PasswordHash:            m.PasswordHash,
		Role:                    entity.Role(m.Role),
		IsActive:                m.IsActive,
		IsEmailVerified:         m.IsEmailVerified,
		EmailVerificationToken:  m.EmailVerificationToken,
		EmailVerificationExpiry: m.EmailVerificationExpiry,
		PasswordResetToken:      m.PasswordResetToken,
		PasswordResetExpiry:     m.PasswordResetExpiry,
		Theme:                   entity.Theme(m.Theme),
		NotificationsEnabled:    m.NotificationsEnabled,
		Language:                m.Language,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                      user.ID,
		Name:                    user.Name,
		Email:                   user.Email,
		PasswordHash:            user.PasswordHash,
		Role:                    string(user.Role),
		IsActive:                user.IsActive,
		IsEmailVerified:         user.IsEmailVerified,
		EmailVerificationToken:  user.EmailVerificationToken,
		EmailVerificationExpiry: user.EmailVerificationExpiry,
		PasswordResetToken:      user.PasswordResetToken,
		PasswordResetExpiry:     user.PasswordResetExpiry,
		Theme:                   string(user.Theme),
		NotificationsEnabled:    user.NotificationsEnabled,
		Language:                user.Language,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ToEntity converts a RefreshTokenModel to a domain RefreshToken entity.
func (m *RefreshTokenModel) ToEntity() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// RefreshTokenFromEntity creates a RefreshTokenModel from a domain entity.
func RefreshTokenFromEntity(token *entity.RefreshToken) *RefreshTokenModel {
	return &RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}
