package handlers

import (
	"errors"

	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// SearchHandler fronts the external lookup proxies: address geocoding,
// Rakuten item search and Rakuten hotel search.
type SearchHandler struct {
	geocoding *services.GeocodingService
	rakuten   *services.RakutenService
}

func NewSearchHandler(geocoding *services.GeocodingService, rakuten *services.RakutenService) *SearchHandler {
	return &SearchHandler{geocoding: geocoding, rakuten: rakuten}
}

// Geocode handles GET /api/geocoding?address=...
func (h *SearchHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		response.BadRequest(c, "address is required")
		return
	}

	coords, err := h.geocoding.Lookup(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotConfigured):
			response.ServerError(c, "geocoding is not configured")
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(c, "address not found")
		default:
			response.ServerError(c, "failed to geocode address")
		}
		return
	}

	response.Success(c, coords)
}

// Products handles GET /api/rakuten?keyword=...
func (h *SearchHandler) Products(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.BadRequest(c, "keyword is required")
		return
	}

	result, err := h.rakuten.SearchProducts(c.Request.Context(), keyword)
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			response.ServerError(c, "rakuten search is not configured")
			return
		}
		response.ServerError(c, "failed to search products")
		return
	}

	response.Success(c, result)
}

// Hotels handles GET /api/rakuten-hotel?latitude=...&longitude=...
func (h *SearchHandler) Hotels(c *gin.Context) {
	result, err := h.rakuten.SearchHotels(c.Request.Context(), c.Query("latitude"), c.Query("longitude"))
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			response.ServerError(c, "rakuten search is not configured")
			return
		}
		response.ServerError(c, "failed to search hotels")
		return
	}

	response.Success(c, result)
}
