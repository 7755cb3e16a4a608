package models

import "time"

// Review is a rating plus comment authored by a user against a spot. Reviews
// are immutable once created; the same author may review a spot more than once.
// Author display fields are denormalized at creation time so listings do not
// need a profile join.
type Review struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SpotID       string    `json:"spot_id" gorm:"index;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36)"`
	Rating       int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string    `json:"comment" validate:"required"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	CreatedAt    time.Time `json:"created_at"`
}
