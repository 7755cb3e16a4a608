package services_test

import (
	"testing"
	"time"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/repositories"
	"slopescout/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newReviewFixture(t *testing.T) (*services.ReviewService, *MockUserRepository, *models.Spot) {
	t.Helper()

	spotRepo := repositories.NewMockSpotRepository()
	reviewRepo := repositories.NewMockReviewRepository()
	userRepo := new(MockUserRepository)
	service := services.NewReviewService(reviewRepo, spotRepo, userRepo)

	spot := &models.Spot{UserID: "owner", Name: "Hill A"}
	assert.NoError(t, spotRepo.Create(spot))

	return service, userRepo, spot
}

func TestReviewService_CreateReview(t *testing.T) {
	service, userRepo, spot := newReviewFixture(t)

	author := &models.User{ID: "user-a", Username: "rider", AvatarURL: "https://example.com/a.png"}
	userRepo.On("GetByID", "user-a").Return(author, nil)

	review, err := service.CreateReview(spot.ID, "user-a", 5, "  Great run!  ")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Great run!", review.Comment)
	assert.Equal(t, "rider", review.AuthorName)
	assert.Equal(t, "https://example.com/a.png", review.AuthorAvatar)

	// The minimum rating is accepted too
	review, err = service.CreateReview(spot.ID, "user-a", 1, "Sketchy landing")
	assert.NoError(t, err)
	assert.Equal(t, 1, review.Rating)

	// Repeat reviews by the same author are permitted
	reviews, err := service.ListReviews(spot.ID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewService_RatingBounds(t *testing.T) {
	service, _, spot := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1, 100} {
		_, err := service.CreateReview(spot.ID, "user-a", rating, "comment")
		assert.ErrorIs(t, err, apperror.ErrValidation, "rating %d should be rejected", rating)
	}
}

func TestReviewService_EmptyComment(t *testing.T) {
	service, _, spot := newReviewFixture(t)

	_, err := service.CreateReview(spot.ID, "user-a", 3, "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestReviewService_MissingSpot(t *testing.T) {
	service, _, _ := newReviewFixture(t)

	_, err := service.CreateReview("no-such-spot", "user-a", 3, "comment")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReviewService_ProfileLookupFailureDegrades(t *testing.T) {
	service, userRepo, spot := newReviewFixture(t)

	userRepo.On("GetByID", "ghost").Return(nil, apperror.NotFound("user", "ghost"))

	review, err := service.CreateReview(spot.ID, "ghost", 4, "still counts")
	assert.NoError(t, err)
	assert.Empty(t, review.AuthorName)
	assert.Empty(t, review.AuthorAvatar)
}

func TestReviewRepository_NewestFirst(t *testing.T) {
	reviewRepo := repositories.NewMockReviewRepository()

	older := &models.Review{SpotID: "spot-1", UserID: "u", Rating: 3, Comment: "first", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Review{SpotID: "spot-1", UserID: "u", Rating: 4, Comment: "second", CreatedAt: time.Now()}
	assert.NoError(t, reviewRepo.Create(older))
	assert.NoError(t, reviewRepo.Create(newer))

	reviews, err := reviewRepo.ListBySpot("spot-1")
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "second", reviews[0].Comment)
	assert.Equal(t, "first", reviews[1].Comment)
}
