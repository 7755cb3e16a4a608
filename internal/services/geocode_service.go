package services

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// GeocodeService proxies reverse-geocoding lookups to Nominatim. Responses,
// including error statuses, are passed through to the caller untouched.
type GeocodeService struct {
	baseURL   string
	userAgent string
}

// NewGeocodeService creates a new GeocodeService. baseURL is the Nominatim
// endpoint, e.g. https://nominatim.openstreetmap.org.
func NewGeocodeService(baseURL string) *GeocodeService {
	return &GeocodeService{
		baseURL:   baseURL,
		userAgent: "SlopeScout/1.0",
	}
}

// ReverseGeocode resolves a coordinate pair to an address payload. It returns
// the upstream status code and raw JSON body; Nominatim errors are forwarded
// rather than rewritten.
func (s *GeocodeService) ReverseGeocode(lat, lon string) (int, []byte, error) {
	requestURL := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		s.baseURL, url.QueryEscape(lat), url.QueryEscape(lon))

	// Nominatim requires an identifying User-Agent.
	agent := fiber.Get(requestURL)
	agent.UserAgent(s.userAgent)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("failed to fetch address from Nominatim: %v", errs[0])
	}
	return status, body, nil
}
