package repositories

import (
	"fmt"

	"slopescout/internal/apperror"
	"slopescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSavedSpotRepository is a GORM implementation of SavedSpotRepository.
type GORMSavedSpotRepository struct {
	db *gorm.DB
}

// NewGORMSavedSpotRepository creates a new instance of GORMSavedSpotRepository.
func NewGORMSavedSpotRepository(db *gorm.DB) *GORMSavedSpotRepository {
	return &GORMSavedSpotRepository{
		db: db,
	}
}

// Get retrieves the saved pair for (user, spot), or a not-found error.
func (r *GORMSavedSpotRepository) Get(userID, spotID string) (*models.SavedSpot, error) {
	var saved models.SavedSpot
	if err := r.db.First(&saved, "user_id = ? AND spot_id = ?", userID, spotID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperror.NotFound("saved spot", spotID)
		}
		return nil, fmt.Errorf("failed to get saved spot %s for user %s: %w", spotID, userID, err)
	}
	return &saved, nil
}

// Create inserts a new saved pair. The unique (user_id, spot_id) index backs
// up the service-level duplicate check.
func (r *GORMSavedSpotRepository) Create(saved *models.SavedSpot) error {
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	if err := r.db.Create(saved).Error; err != nil {
		return fmt.Errorf("failed to save spot %s for user %s: %w", saved.SpotID, saved.UserID, err)
	}
	return nil
}

// Delete removes the pair if present. Deleting a pair that does not exist is
// a successful no-op.
func (r *GORMSavedSpotRepository) Delete(userID, spotID string) error {
	if err := r.db.Delete(&models.SavedSpot{}, "user_id = ? AND spot_id = ?", userID, spotID).Error; err != nil {
		return fmt.Errorf("failed to unsave spot %s for user %s: %w", spotID, userID, err)
	}
	return nil
}

// ListByUser returns all saved pairs belonging to the user.
func (r *GORMSavedSpotRepository) ListByUser(userID string) ([]models.SavedSpot, error) {
	var saved []models.SavedSpot
	if err := r.db.Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved spots for user %s: %w", userID, err)
	}
	return saved, nil
}

// DeleteBySpotID removes every saved pair referencing the given spot.
func (r *GORMSavedSpotRepository) DeleteBySpotID(spotID string) error {
	if err := r.db.Delete(&models.SavedSpot{}, "spot_id = ?", spotID).Error; err != nil {
		return fmt.Errorf("failed to prune saved spots for spot %s: %w", spotID, err)
	}
	return nil
}
