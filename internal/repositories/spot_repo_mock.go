package repositories

import (
	"sort"
	"sync"
	"time"

	"slopescout/internal/apperror"
	"slopescout/internal/models"

	"github.com/google/uuid"
)

// MockSpotRepository is an in-memory implementation of SpotRepository.
type MockSpotRepository struct {
	spots map[string]models.Spot
	mu    sync.RWMutex
}

// NewMockSpotRepository creates a new instance of MockSpotRepository.
func NewMockSpotRepository() *MockSpotRepository {
	return &MockSpotRepository{
		spots: make(map[string]models.Spot),
	}
}

// GetAll returns all spots.
func (r *MockSpotRepository) GetAll() ([]models.Spot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spotList := make([]models.Spot, 0, len(r.spots))
	for _, s := range r.spots {
		spotList = append(spotList, s)
	}
	return spotList, nil
}

// GetByID returns a spot by its ID.
func (r *MockSpotRepository) GetByID(id string) (*models.Spot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, apperror.NotFound("spot", id)
	}
	return &spot, nil
}

// GetByOwner returns the spots created by the given user, newest first.
func (r *MockSpotRepository) GetByOwner(userID string) ([]models.Spot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var spotList []models.Spot
	for _, s := range r.spots {
		if s.UserID == userID {
			spotList = append(spotList, s)
		}
	}
	sort.Slice(spotList, func(i, j int) bool {
		return spotList[i].CreatedAt.After(spotList[j].CreatedAt)
	})
	return spotList, nil
}

// Create adds a new spot.
func (r *MockSpotRepository) Create(spot *models.Spot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if spot.ID == "" {
		spot.ID = uuid.New().String()
	}
	if spot.CreatedAt.IsZero() {
		spot.CreatedAt = time.Now()
	}
	spot.UpdatedAt = time.Now()
	r.spots[spot.ID] = *spot
	return nil
}

// UpdateOwned modifies an existing spot when the owner matches.
func (r *MockSpotRepository) UpdateOwned(spot *models.Spot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.spots[spot.ID]
	if !ok || existing.UserID != spot.UserID {
		return apperror.NotFound("spot", spot.ID)
	}
	spot.CreatedAt = existing.CreatedAt
	spot.UpdatedAt = time.Now()
	r.spots[spot.ID] = *spot
	return nil
}

// DeleteOwned removes a spot when the owner matches.
func (r *MockSpotRepository) DeleteOwned(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.spots[id]
	if !ok || existing.UserID != userID {
		return apperror.NotFound("spot", id)
	}
	delete(r.spots, id)
	return nil
}
