package services

import (
	"errors"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/repositories"
)

// SavedSpotService handles business logic for the favorites index. Save is
// idempotent with an explicit conflict signal on the duplicate; unsave of a
// missing pair is a silent no-op.
type SavedSpotService struct {
	savedRepo repositories.SavedSpotRepository
	spotRepo  repositories.SpotRepository
}

// NewSavedSpotService creates a new SavedSpotService.
func NewSavedSpotService(savedRepo repositories.SavedSpotRepository, spotRepo repositories.SpotRepository) *SavedSpotService {
	return &SavedSpotService{
		savedRepo: savedRepo,
		spotRepo:  spotRepo,
	}
}

// SaveSpot records the spot as a favorite of the user. The spot must exist;
// saving a spot that is already saved returns a conflict, not a duplicate row.
func (s *SavedSpotService) SaveSpot(userID, spotID string) (*models.SavedSpot, error) {
	if _, err := s.spotRepo.GetByID(spotID); err != nil {
		return nil, err
	}

	existing, err := s.savedRepo.Get(userID, spotID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Spot already saved.")
	}

	saved := &models.SavedSpot{
		UserID: userID,
		SpotID: spotID,
	}
	if err := s.savedRepo.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// UnsaveSpot removes the favorite if present. Removing a pair that was never
// saved (or is already gone) succeeds.
func (s *SavedSpotService) UnsaveSpot(userID, spotID string) error {
	return s.savedRepo.Delete(userID, spotID)
}

// ListSavedSpots returns the full spot record for every favorite of the user.
// A pair whose spot no longer resolves is skipped rather than surfaced as a
// broken reference.
func (s *SavedSpotService) ListSavedSpots(userID string) ([]models.Spot, error) {
	saved, err := s.savedRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	spots := make([]models.Spot, 0, len(saved))
	for _, pair := range saved {
		spot, err := s.spotRepo.GetByID(pair.SpotID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				continue // orphaned pair, spot was deleted
			}
			return nil, err
		}
		spots = append(spots, *spot)
	}
	return spots, nil
}
