package models

import "time"

// SavedSpot is a favorite relation between a user and a spot. The pair is
// unique: a user cannot save the same spot twice.
type SavedSpot struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_saved_user_spot;type:varchar(36)"`
	SpotID    string    `json:"spot_id" gorm:"uniqueIndex:idx_saved_user_spot;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
