package services_test

import (
	"testing"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSpotRepository is a mock implementation of repositories.SpotRepository
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) GetAll() ([]models.Spot, error) {
	args := m.Called()
	return args.Get(0).([]models.Spot), args.Error(1)
}

func (m *MockSpotRepository) GetByID(id string) (*models.Spot, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Spot), args.Error(1)
}

func (m *MockSpotRepository) GetByOwner(userID string) ([]models.Spot, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Spot), args.Error(1)
}

func (m *MockSpotRepository) Create(spot *models.Spot) error {
	args := m.Called(spot)
	return args.Error(0)
}

func (m *MockSpotRepository) UpdateOwned(spot *models.Spot) error {
	args := m.Called(spot)
	return args.Error(0)
}

func (m *MockSpotRepository) DeleteOwned(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestSpotService_GetAllSpots(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	service := services.NewSpotService(mockRepo, nil)

	expectedSpots := []models.Spot{
		{ID: "1", UserID: "user-a", Name: "Hill A", Difficulty: models.DifficultyEasy},
		{ID: "2", UserID: "user-b", Name: "Ridge B", Difficulty: models.DifficultyHard},
	}

	mockRepo.On("GetAll").Return(expectedSpots, nil).Once()

	spots, err := service.GetAllSpots()

	assert.NoError(t, err)
	assert.Len(t, spots, 2)
	assert.Equal(t, expectedSpots, spots)
	mockRepo.AssertExpectations(t)
}

func TestSpotService_CreateSpot(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	service := services.NewSpotService(mockRepo, nil)

	// Valid spot is stored
	spot := &models.Spot{
		UserID:   "user-a",
		Name:     "Hill A",
		Location: &models.Location{Lat: 40.0, Lng: -74.5},
	}
	mockRepo.On("Create", spot).Return(nil).Once()
	err := service.CreateSpot(spot)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Empty name fails even when every other field is valid
	err = service.CreateSpot(&models.Spot{
		UserID:        "user-a",
		Name:          "   ",
		Difficulty:    models.DifficultyEasy,
		ElevationGain: floatPtr(120),
		Location:      &models.Location{Lat: 40.0, Lng: -74.5},
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Out-of-range coordinates fail
	err = service.CreateSpot(&models.Spot{
		UserID:   "user-a",
		Name:     "Bad Location",
		Location: &models.Location{Lat: 91.0, Lng: 0},
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Unknown difficulty fails
	err = service.CreateSpot(&models.Spot{
		UserID:     "user-a",
		Name:       "Bad Difficulty",
		Difficulty: "Extreme",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// No unexpected repository calls for the invalid spots
	mockRepo.AssertExpectations(t)
}

func TestSpotService_UpdateSpot_OwnershipProtocol(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	service := services.NewSpotService(mockRepo, nil)

	existing := &models.Spot{ID: "spot-1", UserID: "user-a", Name: "Hill A", Difficulty: models.DifficultyEasy}

	// Non-owner is rejected with Forbidden and nothing is written
	mockRepo.On("GetByID", "spot-1").Return(existing, nil).Once()
	spot, err := service.UpdateSpot("spot-1", "user-b", models.SpotPatch{Name: strPtr("Stolen")})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Nil(t, spot)
	mockRepo.AssertNotCalled(t, "UpdateOwned", mock.Anything)

	// Missing spot returns NotFound, not Forbidden
	mockRepo.On("GetByID", "spot-99").Return(nil, apperror.NotFound("spot", "spot-99")).Once()
	spot, err = service.UpdateSpot("spot-99", "user-b", models.SpotPatch{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, spot)

	mockRepo.AssertExpectations(t)
}

func TestSpotService_UpdateSpot_Patch(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	service := services.NewSpotService(mockRepo, nil)

	existing := &models.Spot{ID: "spot-1", UserID: "user-a", Name: "Hill A", Difficulty: models.DifficultyEasy}

	// Empty patch is a validation failure
	mockRepo.On("GetByID", "spot-1").Return(existing, nil).Once()
	_, err := service.UpdateSpot("spot-1", "user-a", models.SpotPatch{})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Partial patch changes only the supplied field
	fetched := *existing
	mockRepo.On("GetByID", "spot-1").Return(&fetched, nil).Once()
	mockRepo.On("UpdateOwned", mock.Anything).Return(nil).Once()
	spot, err := service.UpdateSpot("spot-1", "user-a", models.SpotPatch{Difficulty: strPtr(models.DifficultyHard)})
	assert.NoError(t, err)
	assert.Equal(t, models.DifficultyHard, spot.Difficulty)
	assert.Equal(t, "Hill A", spot.Name)

	// Patching the name to whitespace fails validation
	fetched2 := *existing
	mockRepo.On("GetByID", "spot-1").Return(&fetched2, nil).Once()
	_, err = service.UpdateSpot("spot-1", "user-a", models.SpotPatch{Name: strPtr("  ")})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Explicit null clears the location
	fetched3 := *existing
	fetched3.Location = &models.Location{Lat: 40.0, Lng: -74.5}
	mockRepo.On("GetByID", "spot-1").Return(&fetched3, nil).Once()
	mockRepo.On("UpdateOwned", mock.Anything).Return(nil).Once()
	spot, err = service.UpdateSpot("spot-1", "user-a", models.SpotPatch{LocationSet: true})
	assert.NoError(t, err)
	assert.Nil(t, spot.Location)

	mockRepo.AssertExpectations(t)
}

func TestSpotService_DeleteSpot(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	service := services.NewSpotService(mockRepo, nil)

	existing := &models.Spot{ID: "spot-1", UserID: "user-a", Name: "Hill A"}

	// Non-owner is rejected
	mockRepo.On("GetByID", "spot-1").Return(existing, nil).Once()
	err := service.DeleteSpot("spot-1", "user-b")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	mockRepo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything)

	// Missing spot returns NotFound
	mockRepo.On("GetByID", "spot-99").Return(nil, apperror.NotFound("spot", "spot-99")).Once()
	err = service.DeleteSpot("spot-99", "user-a")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Owner delete succeeds
	mockRepo.On("GetByID", "spot-1").Return(existing, nil).Once()
	mockRepo.On("DeleteOwned", "spot-1", "user-a").Return(nil).Once()
	err = service.DeleteSpot("spot-1", "user-a")
	assert.NoError(t, err)

	// A delete that affected zero rows surfaces as an error, never success
	mockRepo.On("GetByID", "spot-1").Return(existing, nil).Once()
	mockRepo.On("DeleteOwned", "spot-1", "user-a").Return(apperror.NotFound("spot", "spot-1")).Once()
	err = service.DeleteSpot("spot-1", "user-a")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
