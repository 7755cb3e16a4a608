package handlers

import (
	"encoding/json"
	"log"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SpotHandler handles HTTP requests for spots, favorites and reviews.
type SpotHandler struct {
	spotService   *services.SpotService
	savedService  *services.SavedSpotService
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(spotService *services.SpotService, savedService *services.SavedSpotService, reviewService *services.ReviewService) *SpotHandler {
	return &SpotHandler{
		spotService:   spotService,
		savedService:  savedService,
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the spot routes with the Fiber app. auth is the
// bearer-token middleware; the static user routes must be registered before
// the /:id routes so they are not captured as spot IDs.
func (h *SpotHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	spotRoutes := router.Group("/spots")
	spotRoutes.Get("/", h.HandleGetSpots)
	spotRoutes.Post("/", auth, h.HandleCreateSpot)
	spotRoutes.Get("/user/my-spots", auth, h.HandleGetMySpots)
	spotRoutes.Get("/users/me/saved-spots", auth, h.HandleGetSavedSpots)
	spotRoutes.Get("/:id", h.HandleGetSpotByID)
	spotRoutes.Put("/:id", auth, h.HandleUpdateSpot)
	spotRoutes.Delete("/:id", auth, h.HandleDeleteSpot)
	spotRoutes.Post("/:id/save", auth, h.HandleSaveSpot)
	spotRoutes.Delete("/:id/unsave", auth, h.HandleUnsaveSpot)
	spotRoutes.Get("/:id/reviews", h.HandleGetSpotReviews)
	spotRoutes.Post("/:id/reviews", auth, h.HandleCreateSpotReview)
}

// callerID returns the identity the auth middleware resolved from the bearer
// token.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CreateSpotRequest represents the request body for creating a spot.
// A client-supplied user_id is accepted in the body for compatibility but
// ignored: the owner is always the authenticated caller.
type CreateSpotRequest struct {
	UserID          string           `json:"user_id"`
	Name            string           `json:"name" validate:"required"`
	Description     string           `json:"description" validate:"omitempty,max=500"`
	Difficulty      string           `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	ElevationGain   *float64         `json:"elevation_gain"`
	Location        *models.Location `json:"location"`
	ImageURL        string           `json:"image_url" validate:"omitempty,max=500"`
	LocationAddress string           `json:"location_address" validate:"omitempty,max=500"`
}

// HandleCreateSpot creates a new spot owned by the authenticated caller.
func (h *SpotHandler) HandleCreateSpot(c *fiber.Ctx) error {
	var req CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create spot request body: %v", err)
		return respondError(c, apperror.ValidationFailed("body", "Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return respondError(c, apperror.ValidationFields(validationFields(err)))
	}

	spot := &models.Spot{
		UserID:          callerID(c),
		Name:            req.Name,
		Description:     req.Description,
		Difficulty:      req.Difficulty,
		ElevationGain:   req.ElevationGain,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
		LocationAddress: req.LocationAddress,
	}

	if err := h.spotService.CreateSpot(spot); err != nil {
		log.Printf("Error creating spot: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(spot)
}

// HandleGetSpots retrieves all spots. Public.
func (h *SpotHandler) HandleGetSpots(c *fiber.Ctx) error {
	spots, err := h.spotService.GetAllSpots()
	if err != nil {
		log.Printf("Error getting all spots: %v", err)
		return respondError(c, err)
	}
	return c.JSON(spots)
}

// HandleGetSpotByID retrieves a single spot by its ID. Public.
func (h *SpotHandler) HandleGetSpotByID(c *fiber.Ctx) error {
	spotID := c.Params("id")
	spot, err := h.spotService.GetSpotByID(spotID)
	if err != nil {
		log.Printf("Error getting spot by ID %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.JSON(spot)
}

// spotImmutableFields are rejected when present in an update patch.
var spotImmutableFields = []string{"id", "user_id", "owner_id", "created_at"}

// HandleUpdateSpot applies a sparse patch to a spot owned by the caller.
// Immutable fields present in the patch are rejected outright.
func (h *SpotHandler) HandleUpdateSpot(c *fiber.Ctx) error {
	spotID := c.Params("id")

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		log.Printf("Error parsing update spot request body: %v", err)
		return respondError(c, apperror.ValidationFailed("body", "Invalid request body"))
	}

	for _, field := range spotImmutableFields {
		if _, ok := raw[field]; ok {
			return respondError(c, apperror.ValidationFailed(field, "Field '"+field+"' is immutable and cannot be updated."))
		}
	}

	var patch models.SpotPatch
	stringFields := map[string]**string{
		"name":             &patch.Name,
		"description":      &patch.Description,
		"difficulty":       &patch.Difficulty,
		"image_url":        &patch.ImageURL,
		"location_address": &patch.LocationAddress,
	}
	for field, dst := range stringFields {
		if v, ok := raw[field]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return respondError(c, apperror.ValidationFailed(field, "Field '"+field+"' must be a string."))
			}
		}
	}
	if v, ok := raw["elevation_gain"]; ok {
		patch.ElevationSet = true
		if err := json.Unmarshal(v, &patch.ElevationGain); err != nil {
			return respondError(c, apperror.ValidationFailed("elevation_gain", "Invalid elevation gain. Must be a number or null."))
		}
	}
	if v, ok := raw["location"]; ok {
		patch.LocationSet = true
		if err := json.Unmarshal(v, &patch.Location); err != nil {
			return respondError(c, apperror.ValidationFailed("location", "Invalid location format. Must be an object with lat and lng properties, or null."))
		}
	}

	spot, err := h.spotService.UpdateSpot(spotID, callerID(c), patch)
	if err != nil {
		log.Printf("Error updating spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.JSON(spot)
}

// HandleDeleteSpot permanently deletes a spot owned by the caller.
func (h *SpotHandler) HandleDeleteSpot(c *fiber.Ctx) error {
	spotID := c.Params("id")
	if err := h.spotService.DeleteSpot(spotID, callerID(c)); err != nil {
		log.Printf("Error deleting spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Spot deleted successfully",
	})
}

// HandleGetMySpots retrieves the spots created by the authenticated caller.
func (h *SpotHandler) HandleGetMySpots(c *fiber.Ctx) error {
	user := callerID(c)
	spots, err := h.spotService.GetSpotsByOwner(user)
	if err != nil {
		log.Printf("Error getting spots for user %s: %v", user, err)
		return respondError(c, err)
	}
	return c.JSON(spots)
}

// HandleSaveSpot adds the spot to the caller's favorites.
func (h *SpotHandler) HandleSaveSpot(c *fiber.Ctx) error {
	spotID := c.Params("id")
	saved, err := h.savedService.SaveSpot(callerID(c), spotID)
	if err != nil {
		log.Printf("Error saving spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Spot saved successfully!",
		"data":    saved,
	})
}

// HandleUnsaveSpot removes the spot from the caller's favorites. Removing a
// spot that was never saved still succeeds.
func (h *SpotHandler) HandleUnsaveSpot(c *fiber.Ctx) error {
	spotID := c.Params("id")
	if err := h.savedService.UnsaveSpot(callerID(c), spotID); err != nil {
		log.Printf("Error unsaving spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Spot unsaved successfully!",
	})
}

// HandleGetSavedSpots retrieves the full spot records the caller has saved.
func (h *SpotHandler) HandleGetSavedSpots(c *fiber.Ctx) error {
	user := callerID(c)
	spots, err := h.savedService.ListSavedSpots(user)
	if err != nil {
		log.Printf("Error listing saved spots for user %s: %v", user, err)
		return respondError(c, err)
	}
	return c.JSON(spots)
}

// CreateReviewRequest represents the request body for reviewing a spot.
// Rating is a strict integer; fractional or string values fail decoding.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// HandleCreateSpotReview creates a review for a spot by the authenticated caller.
func (h *SpotHandler) HandleCreateSpotReview(c *fiber.Ctx) error {
	spotID := c.Params("id")

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return respondError(c, apperror.ValidationFailed("body", "Rating must be a number between 1 and 5 and comment must be a string."))
	}

	if err := h.validate.Struct(req); err != nil {
		return respondError(c, apperror.ValidationFields(validationFields(err)))
	}

	review, err := h.reviewService.CreateReview(spotID, callerID(c), req.Rating, req.Comment)
	if err != nil {
		log.Printf("Error creating review for spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetSpotReviews retrieves all reviews for a spot, newest first. Public.
func (h *SpotHandler) HandleGetSpotReviews(c *fiber.Ctx) error {
	spotID := c.Params("id")
	reviews, err := h.reviewService.ListReviews(spotID)
	if err != nil {
		log.Printf("Error listing reviews for spot %s: %v", spotID, err)
		return respondError(c, err)
	}
	return c.JSON(reviews)
}
