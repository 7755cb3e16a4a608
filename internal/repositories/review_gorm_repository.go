package repositories

import (
	"fmt"

	"slopescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review for spot %s: %w", review.SpotID, err)
	}
	return nil
}

// ListBySpot returns all reviews for the spot, newest first.
func (r *GORMReviewRepository) ListBySpot(spotID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("spot_id = ?", spotID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews for spot %s: %w", spotID, err)
	}
	return reviews, nil
}
