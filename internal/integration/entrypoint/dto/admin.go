package dto

import (
	"time"

	"github.com/dreamwell/backend/internal/application/usecase/admin"
	"github.com/dreamwell/backend/internal/domain/entity"
)

// UserActivityResponse represents an account with its journal counters.
type UserActivityResponse struct {
	User        UserResponse `json:"user"`
	DreamCount  int64        `json:"dreamCount"`
	MoodEntries int          `json:"moodEntries"`
	LastDreamAt *string      `json:"lastDreamAt,omitempty"`
}

// ToUserActivityResponse converts a UserActivity to its DTO.
func ToUserActivityResponse(a *admin.UserActivity) UserActivityResponse {
	resp := UserActivityResponse{
		User:        ToUserResponse(a.User),
		DreamCount:  a.DreamCount,
		MoodEntries: a.MoodEntries,
	}
	if a.LastDreamAt != nil {
		formatted := a.LastDreamAt.Format(DateLayout)
		resp.LastDreamAt = &formatted
	}
	return resp
}

// ToUserListResponse converts a list of accounts.
func ToUserListResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// UpdateSettingRequest represents the request body for a settings change.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse represents a system setting in API responses.
type SettingResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToSettingResponse converts a SystemSetting entity to its DTO.
func ToSettingResponse(s *entity.SystemSetting) SettingResponse {
	return SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
