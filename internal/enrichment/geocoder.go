// File: internal/enrichment/geocoder.go
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"synapse_backend/internal/config"
	"synapse_backend/internal/listing"
)

// Geocoder is the capability interface for forward geocoding. A nil point with
// a nil error means the provider had no result for the location.
type Geocoder interface {
	TryGeocode(ctx context.Context, location string) (*listing.GeoPoint, error)
}

// HTTPGeocoder calls an OpenCage-style forward geocoding endpoint.
type HTTPGeocoder struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPGeocoder creates a geocoder client with the configured timeout.
func NewHTTPGeocoder(cfg *config.Config) *HTTPGeocoder {
	return &HTTPGeocoder{
		endpoint: cfg.GeocoderURL,
		apiKey:   cfg.GeocoderAPIKey,
		client:   &http.Client{Timeout: cfg.ExternalCallTimeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// TryGeocode resolves a free-text location to a point. An empty result set is
// not an error; the caller falls back to the default coordinates.
func (g *HTTPGeocoder) TryGeocode(ctx context.Context, location string) (*listing.GeoPoint, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("key", g.apiKey)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding geocoder response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}

	geom := payload.Results[0].Geometry
	return &listing.GeoPoint{Longitude: geom.Lng, Latitude: geom.Lat}, nil
}
