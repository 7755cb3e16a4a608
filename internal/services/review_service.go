package services

import (
	"log"
	"strings"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/repositories"
)

// ReviewService handles business logic for spot reviews. Reviews are immutable
// once created and a user may review the same spot more than once.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	spotRepo   repositories.SpotRepository
	userRepo   repositories.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, spotRepo repositories.SpotRepository, userRepo repositories.UserRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		spotRepo:   spotRepo,
		userRepo:   userRepo,
	}
}

// CreateReview validates and stores a review against an existing spot. The
// author's display name and avatar are denormalized onto the review; a failed
// profile lookup degrades to empty display fields rather than failing the
// create.
func (s *ReviewService) CreateReview(spotID, authorID string, rating int, comment string) (*models.Review, error) {
	fields := make(map[string]string)
	if rating < 1 || rating > 5 {
		fields["rating"] = "Rating must be a number between 1 and 5."
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		fields["comment"] = "Comment cannot be empty."
	}
	if len(fields) > 0 {
		return nil, apperror.ValidationFields(fields)
	}

	if _, err := s.spotRepo.GetByID(spotID); err != nil {
		return nil, err
	}

	review := &models.Review{
		SpotID:  spotID,
		UserID:  authorID,
		Rating:  rating,
		Comment: comment,
	}

	if author, err := s.userRepo.GetByID(authorID); err == nil {
		review.AuthorName = author.Username
		review.AuthorAvatar = author.AvatarURL
	} else {
		log.Printf("Could not resolve author profile %s for review: %v", authorID, err)
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns all reviews for the spot, newest first. Public
// operation; an unknown spot simply has no reviews.
func (s *ReviewService) ListReviews(spotID string) ([]models.Review, error) {
	return s.reviewRepo.ListBySpot(spotID)
}
