// File: internal/enrichment/extractor.go
package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"synapse_backend/internal/config"
	"synapse_backend/internal/listing"
)

// Extractor is the capability interface for the external structured-data
// service. Callers must treat the error arm as "no data" and never propagate
// it from a listing write.
type Extractor interface {
	TryExtract(ctx context.Context, description string) (*listing.StructuredData, error)
}

// HTTPExtractor calls the AI engine's /process endpoint.
type HTTPExtractor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPExtractor creates an extractor client with the configured timeout.
func NewHTTPExtractor(cfg *config.Config) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL: cfg.AIEngineURL,
		client:  &http.Client{Timeout: cfg.ExternalCallTimeout},
	}
}

type extractRequest struct {
	Description string `json:"description"`
}

// TryExtract posts the description to the AI engine and returns its best-guess
// attributes. Any transport failure, non-2xx status, or malformed payload is
// returned as an error for the pipeline to swallow.
func (e *HTTPExtractor) TryExtract(ctx context.Context, description string) (*listing.StructuredData, error) {
	body, err := json.Marshal(extractRequest{Description: description})
	if err != nil {
		return nil, fmt.Errorf("encoding extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/process", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling extractor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}

	var data listing.StructuredData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding extractor response: %w", err)
	}
	return &data, nil
}
