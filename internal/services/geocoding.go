package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/borantia/backend/internal/config"
)

const googleGeocodingURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GeocodingService resolves a street address to coordinates through the
// Google Maps Geocoding API. Results are biased to Japan (language=ja,
// region=jp) since posting locations are Japanese addresses.
type GeocodingService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeocodingService(cfg *config.GeocodingConfig) *GeocodingService {
	return &GeocodingService{
		apiKey:     cfg.APIKey,
		baseURL:    googleGeocodingURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Coordinates struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	PlaceID          string  `json:"place_id"`
}

type geocodingResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Lookup converts an address into coordinates. Returns ErrNotFound when the
// API resolves nothing for the address.
func (s *GeocodingService) Lookup(ctx context.Context, address string) (*Coordinates, error) {
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", s.apiKey)
	params.Set("language", "ja")
	params.Set("region", "jp")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var data geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return nil, ErrNotFound
	}

	first := data.Results[0]
	return &Coordinates{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
		PlaceID:          first.PlaceID,
	}, nil
}
