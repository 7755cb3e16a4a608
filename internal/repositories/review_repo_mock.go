package repositories

import (
	"sort"
	"sync"
	"time"

	"slopescout/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// Create adds a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews[review.ID] = *review
	return nil
}

// ListBySpot returns all reviews for the spot, newest first.
func (r *MockReviewRepository) ListBySpot(spotID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviewList []models.Review
	for _, rev := range r.reviews {
		if rev.SpotID == spotID {
			reviewList = append(reviewList, rev)
		}
	}
	sort.Slice(reviewList, func(i, j int) bool {
		return reviewList[i].CreatedAt.After(reviewList[j].CreatedAt)
	})
	return reviewList, nil
}
