package repositories

import (
	"fmt"

	"slopescout/internal/apperror"
	"slopescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSpotRepository is a GORM implementation of SpotRepository.
type GORMSpotRepository struct {
	db *gorm.DB
}

// NewGORMSpotRepository creates a new instance of GORMSpotRepository.
func NewGORMSpotRepository(db *gorm.DB) *GORMSpotRepository {
	return &GORMSpotRepository{
		db: db,
	}
}

// GetAll retrieves all spots from the database.
func (r *GORMSpotRepository) GetAll() ([]models.Spot, error) {
	var spots []models.Spot
	if err := r.db.Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to get all spots: %w", err)
	}
	return spots, nil
}

// GetByID retrieves a single spot by its ID from the database.
func (r *GORMSpotRepository) GetByID(id string) (*models.Spot, error) {
	var spot models.Spot
	if err := r.db.First(&spot, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperror.NotFound("spot", id)
		}
		return nil, fmt.Errorf("failed to get spot by ID %s: %w", id, err)
	}
	return &spot, nil
}

// GetByOwner retrieves every spot created by the given user, newest first.
func (r *GORMSpotRepository) GetByOwner(userID string) ([]models.Spot, error) {
	var spots []models.Spot
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to get spots for user %s: %w", userID, err)
	}
	return spots, nil
}

// Create creates a new spot in the database.
func (r *GORMSpotRepository) Create(spot *models.Spot) error {
	if spot.ID == "" {
		spot.ID = uuid.New().String()
	}
	if err := r.db.Create(spot).Error; err != nil {
		return fmt.Errorf("failed to create spot: %w", err)
	}
	return nil
}

// UpdateOwned updates the mutable fields of a spot, conditioned on the owner.
// Select forces zero values through so a cleared description or a location set
// to null is written as such.
func (r *GORMSpotRepository) UpdateOwned(spot *models.Spot) error {
	res := r.db.Model(&models.Spot{}).
		Where("id = ? AND user_id = ?", spot.ID, spot.UserID).
		Select("Name", "Description", "Difficulty", "ElevationGain", "Location", "ImageURL", "LocationAddress").
		Updates(spot)
	if res.Error != nil {
		return fmt.Errorf("failed to update spot %s: %w", spot.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the spot is gone or the owner no longer matches; never claim
		// success when nothing was written.
		return apperror.NotFound("spot", spot.ID)
	}
	return nil
}

// DeleteOwned deletes a spot, conditioned on the owner. Deleting zero rows is
// reported as not found rather than silent success.
func (r *GORMSpotRepository) DeleteOwned(id, userID string) error {
	res := r.db.Delete(&models.Spot{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete spot %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("spot", id)
	}
	return nil
}
