package repositories

import (
	"slopescout/internal/models"
)

// SavedSpotRepository defines the interface for favorite (user, spot) pairs.
// Delete of a missing pair is a no-op; DeleteBySpotID is used by the event
// consumer to prune favorites after a spot is deleted.
type SavedSpotRepository interface {
	Get(userID, spotID string) (*models.SavedSpot, error)
	Create(saved *models.SavedSpot) error
	Delete(userID, spotID string) error
	ListByUser(userID string) ([]models.SavedSpot, error)
	DeleteBySpotID(spotID string) error
}
