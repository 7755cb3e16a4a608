package models

import "time"

// Spot difficulty levels. Stored as plain strings; validated at the boundary.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Location is a geographic coordinate pair. Stored as a JSON column so a spot
// without a location is simply NULL.
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Spot represents a user-submitted geotagged point of interest.
type Spot struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Name            string    `json:"name" validate:"required,min=1,max=100"`
	Description     string    `json:"description" validate:"omitempty,max=500"`
	Difficulty      string    `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	ElevationGain   *float64  `json:"elevation_gain"`
	Location        *Location `json:"location" gorm:"serializer:json"`
	ImageURL        string    `json:"image_url" validate:"omitempty,max=500"`
	LocationAddress string    `json:"location_address" validate:"omitempty,max=500"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SpotPatch carries a sparse update for a spot. Pointer fields distinguish
// "not supplied" from "supplied as empty"; the Set flags additionally allow an
// explicit JSON null to clear elevation gain or location.
type SpotPatch struct {
	Name            *string
	Description     *string
	Difficulty      *string
	ElevationGain   *float64
	ElevationSet    bool
	Location        *Location
	LocationSet     bool
	ImageURL        *string
	LocationAddress *string
}

// Empty reports whether the patch carries no recognized field at all.
func (p SpotPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Difficulty == nil &&
		!p.ElevationSet && !p.LocationSet && p.ImageURL == nil && p.LocationAddress == nil
}
