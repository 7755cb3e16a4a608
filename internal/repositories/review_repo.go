package repositories

import (
	"slopescout/internal/models"
)

// ReviewRepository defines the interface for review data access. Reviews are
// append-only; there is no update or delete.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListBySpot(spotID string) ([]models.Review, error)
}
