package repositories

import (
	"slopescout/internal/models"
)

// SpotRepository defines the interface for spot data access.
//
// UpdateOwned and DeleteOwned condition the mutation on the owner as well as
// the ID ("affect row only if id matches AND owner matches"), so the window
// between the service's ownership check and the write cannot flip the outcome
// silently: a zero affected-row count comes back as a not-found error.
type SpotRepository interface {
	GetAll() ([]models.Spot, error)
	GetByID(id string) (*models.Spot, error)
	GetByOwner(userID string) ([]models.Spot, error)
	Create(spot *models.Spot) error
	UpdateOwned(spot *models.Spot) error
	DeleteOwned(id, userID string) error
}
