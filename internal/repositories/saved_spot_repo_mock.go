package repositories

import (
	"sync"
	"time"

	"slopescout/internal/apperror"
	"slopescout/internal/models"

	"github.com/google/uuid"
)

// MockSavedSpotRepository is an in-memory implementation of SavedSpotRepository.
type MockSavedSpotRepository struct {
	saved map[string]models.SavedSpot // keyed by userID + "/" + spotID
	mu    sync.RWMutex
}

// NewMockSavedSpotRepository creates a new instance of MockSavedSpotRepository.
func NewMockSavedSpotRepository() *MockSavedSpotRepository {
	return &MockSavedSpotRepository{
		saved: make(map[string]models.SavedSpot),
	}
}

func pairKey(userID, spotID string) string {
	return userID + "/" + spotID
}

// Get returns the saved pair for (user, spot).
func (r *MockSavedSpotRepository) Get(userID, spotID string) (*models.SavedSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved, ok := r.saved[pairKey(userID, spotID)]
	if !ok {
		return nil, apperror.NotFound("saved spot", spotID)
	}
	return &saved, nil
}

// Create adds a new saved pair.
func (r *MockSavedSpotRepository) Create(saved *models.SavedSpot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	saved.CreatedAt = time.Now()
	r.saved[pairKey(saved.UserID, saved.SpotID)] = *saved
	return nil
}

// Delete removes the pair if present; absent pairs are a no-op.
func (r *MockSavedSpotRepository) Delete(userID, spotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.saved, pairKey(userID, spotID))
	return nil
}

// ListByUser returns all saved pairs belonging to the user.
func (r *MockSavedSpotRepository) ListByUser(userID string) ([]models.SavedSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var savedList []models.SavedSpot
	for _, s := range r.saved {
		if s.UserID == userID {
			savedList = append(savedList, s)
		}
	}
	return savedList, nil
}

// DeleteBySpotID removes every saved pair referencing the given spot.
func (r *MockSavedSpotRepository) DeleteBySpotID(spotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.saved {
		if s.SpotID == spotID {
			delete(r.saved, key)
		}
	}
	return nil
}
