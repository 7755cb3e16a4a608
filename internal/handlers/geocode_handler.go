package handlers

import (
	"log"

	"slopescout/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GeocodeHandler handles reverse-geocoding proxy requests.
type GeocodeHandler struct {
	geocodeService *services.GeocodeService
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(geocodeService *services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeService: geocodeService,
	}
}

// RegisterRoutes registers the geocoding routes with the Fiber app.
func (h *GeocodeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/geocode/reverse", h.HandleReverseGeocode)
}

// HandleReverseGeocode proxies a coordinate lookup to Nominatim, passing the
// upstream status and body through unchanged.
func (h *GeocodeHandler) HandleReverseGeocode(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Latitude and longitude are required",
		})
	}

	status, body, err := h.geocodeService.ReverseGeocode(lat, lon)
	if err != nil {
		log.Printf("Error fetching reverse geocode for lat=%s lon=%s: %v", lat, lon, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch address from Nominatim",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}
