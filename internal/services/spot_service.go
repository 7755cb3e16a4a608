package services

import (
	"log"
	"math"
	"strings"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/repositories"
	"slopescout/pkg/rabbitmq"
)

// SpotService handles business logic related to spots: field validation,
// the ownership protocol on mutations, and lifecycle event publishing.
type SpotService struct {
	spotRepo repositories.SpotRepository
	mqClient *rabbitmq.Client
}

// NewSpotService creates a new SpotService.
func NewSpotService(spotRepo repositories.SpotRepository, mqClient *rabbitmq.Client) *SpotService {
	return &SpotService{
		spotRepo: spotRepo,
		mqClient: mqClient,
	}
}

// GetAllSpots retrieves all spots. Public operation.
func (s *SpotService) GetAllSpots() ([]models.Spot, error) {
	return s.spotRepo.GetAll()
}

// GetSpotByID retrieves a single spot by its ID. Public operation.
func (s *SpotService) GetSpotByID(id string) (*models.Spot, error) {
	return s.spotRepo.GetByID(id)
}

// GetSpotsByOwner retrieves the spots created by the given user, newest first.
func (s *SpotService) GetSpotsByOwner(userID string) ([]models.Spot, error) {
	return s.spotRepo.GetByOwner(userID)
}

// CreateSpot validates and stores a new spot. The owner is whatever the
// caller resolved from the bearer token; any client-supplied user_id has been
// discarded before this point.
func (s *SpotService) CreateSpot(spot *models.Spot) error {
	spot.Name = strings.TrimSpace(spot.Name)
	spot.Description = strings.TrimSpace(spot.Description)

	if err := validateSpotFields(spot); err != nil {
		return err
	}

	if err := s.spotRepo.Create(spot); err != nil {
		return err
	}

	s.publishEvent(rabbitmq.SpotCreated, spot.ID, spot.UserID)
	return nil
}

// UpdateSpot applies a sparse patch to a spot. The protocol is strict:
// existence first (NotFound), then ownership (Forbidden), then validation,
// and only then the mutation, which is itself owner-conditioned.
func (s *SpotService) UpdateSpot(id, callerID string, patch models.SpotPatch) (*models.Spot, error) {
	spot, err := s.spotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if spot.UserID != callerID {
		return nil, apperror.Forbidden("User not authorized to update this spot")
	}

	if patch.Empty() {
		return nil, apperror.ValidationFailed("patch", "No valid fields provided for update.")
	}

	if patch.Name != nil {
		spot.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		spot.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Difficulty != nil {
		spot.Difficulty = *patch.Difficulty
	}
	if patch.ElevationSet {
		spot.ElevationGain = patch.ElevationGain
	}
	if patch.LocationSet {
		spot.Location = patch.Location
	}
	if patch.ImageURL != nil {
		spot.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if patch.LocationAddress != nil {
		spot.LocationAddress = strings.TrimSpace(*patch.LocationAddress)
	}

	if err := validateSpotFields(spot); err != nil {
		return nil, err
	}

	if err := s.spotRepo.UpdateOwned(spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// DeleteSpot deletes a spot after the same existence-then-ownership check as
// UpdateSpot, then announces the deletion so consumers can prune favorites.
func (s *SpotService) DeleteSpot(id, callerID string) error {
	spot, err := s.spotRepo.GetByID(id)
	if err != nil {
		return err
	}
	if spot.UserID != callerID {
		return apperror.Forbidden("User not authorized to delete this spot")
	}

	if err := s.spotRepo.DeleteOwned(id, callerID); err != nil {
		return err
	}

	s.publishEvent(rabbitmq.SpotDeleted, id, callerID)
	return nil
}

// publishEvent publishes a spot lifecycle event. Publishing is best-effort;
// a broker failure never fails the request that triggered it.
func (s *SpotService) publishEvent(eventType, spotID, userID string) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping event publication.")
		return
	}
	event := rabbitmq.Event{Type: eventType, SpotID: spotID, UserID: userID}
	if err := s.mqClient.PublishSpotEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for spot %s: %v", eventType, spotID, err)
	}
}

// validateSpotFields checks the domain rules shared by create and update.
func validateSpotFields(spot *models.Spot) error {
	fields := make(map[string]string)

	if spot.Name == "" {
		fields["name"] = "Name must not be empty."
	}
	if spot.Difficulty != "" &&
		spot.Difficulty != models.DifficultyEasy &&
		spot.Difficulty != models.DifficultyMedium &&
		spot.Difficulty != models.DifficultyHard {
		fields["difficulty"] = "Difficulty must be one of Easy, Medium, Hard."
	}
	if spot.ElevationGain != nil {
		if math.IsNaN(*spot.ElevationGain) || math.IsInf(*spot.ElevationGain, 0) {
			fields["elevation_gain"] = "Elevation gain must be a finite number."
		}
	}
	if spot.Location != nil {
		if spot.Location.Lat < -90 || spot.Location.Lat > 90 ||
			math.IsNaN(spot.Location.Lat) {
			fields["location"] = "Latitude must be between -90 and 90."
		} else if spot.Location.Lng < -180 || spot.Location.Lng > 180 ||
			math.IsNaN(spot.Location.Lng) {
			fields["location"] = "Longitude must be between -180 and 180."
		}
	}

	if len(fields) > 0 {
		return apperror.ValidationFields(fields)
	}
	return nil
}
