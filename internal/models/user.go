package models

import "time"

// User represents a registered account. Deletion is permanent throughout the
// app, so timestamps are declared explicitly rather than embedding gorm.Model
// (which would bring soft-delete semantics along).
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"password,omitempty" gorm:"type:varchar(255)" validate:"required,min=6"` // Cleared before any response leaves a handler
	AvatarURL string    `json:"avatar_url" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
