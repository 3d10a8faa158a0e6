package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/domain/entity"
)

// SupportTicketModel represents the support_tickets table.
type SupportTicketModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	Subject    string     `gorm:"type:varchar(255);not null"`
	Message    string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(20);index;not null;default:'OPEN'"`
	AdminReply string     `gorm:"type:text"`
	RepliedAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

// TableName returns the table name for the SupportTicketModel.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

// ToEntity converts a SupportTicketModel to a domain entity.
func (m *SupportTicketModel) ToEntity() *entity.SupportTicket {
	return &entity.SupportTicket{
		ID:         m.ID,
		UserID:     m.UserID,
		Subject:    m.Subject,
		Message:    m.Message,
		Status:     entity.TicketStatus(m.Status),
		AdminReply: m.AdminReply,
		RepliedAt:  m.RepliedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SupportTicketFromEntity creates a SupportTicketModel from a domain entity.
func SupportTicketFromEntity(ticket *entity.SupportTicket) *SupportTicketModel {
	return &SupportTicketModel{
		ID:         ticket.ID,
		UserID:     ticket.UserID,
		Subject:    ticket.Subject,
		Message:    ticket.Message,
		Status:     string(ticket.Status),
		AdminReply: ticket.AdminReply,
		RepliedAt:  ticket.RepliedAt,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}

// SystemSettingModel represents the system_settings table.
type SystemSettingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Value       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the SystemSettingModel.
func (SystemSettingModel) TableName() string {
	return "system_settings"
}

// ToEntity converts a SystemSettingModel to a domain entity.
func (m *SystemSettingModel) ToEntity() *entity.SystemSetting {
	return &entity.SystemSetting{
		ID:          m.ID,
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SystemSettingFromEntity creates a SystemSettingModel from a domain entity.
func SystemSettingFromEntity(setting *entity.SystemSetting) *SystemSettingModel {
	return &SystemSettingModel{
		ID:          setting.ID,
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		UpdatedAt:   setting.UpdatedAt,
	}
}
