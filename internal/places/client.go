// File: internal/places/client.go
package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"synapse_backend/internal/config"
)

const googlePlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client proxies requests to the Google Places API so the browser never sees
// the API key. Responses are passed through verbatim.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Places client with the configured timeout.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    googlePlacesBaseURL,
		apiKey:     cfg.GooglePlacesAPIKey,
		httpClient: &http.Client{Timeout: cfg.ExternalCallTimeout},
	}
}

// Autocomplete returns place suggestions for a partial input string.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]byte, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("key", c.apiKey)
	params.Set("components", "country:in")
	return c.get(ctx, c.baseURL+"/autocomplete/json", params)
}

// Details returns the full place record for a place ID.
func (c *Client) Details(ctx context.Context, placeID string) ([]byte, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	return c.get(ctx, c.baseURL+"/details/json", params)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading places response: %w", err)
	}
	return body, nil
}
