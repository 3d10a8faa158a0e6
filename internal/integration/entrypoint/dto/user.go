package dto

// UpdateProfileRequest represents the request body for profile updates.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name                 *string `json:"name" binding:"omitempty,min=1,max=100"`
	Theme                *string `json:"theme" binding:"omitempty,oneof=light dark"`
	Language             *string `json:"language" binding:"omitempty,min=2,max=10"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
}

// ChangePasswordRequest represents the request body for an authenticated
// password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
