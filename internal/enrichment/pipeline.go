// File: internal/enrichment/pipeline.go
package enrichment

import (
	"context"
	"sync"

	"synapse_backend/internal/listing"

	"go.uber.org/zap"
)

// Pipeline orchestrates structured-data extraction and geocoding for listing
// writes. Both external calls are best-effort: a failure of one never aborts
// the other or the listing write itself.
type Pipeline struct {
	extractor Extractor
	geocoder  Geocoder
	logger    *zap.Logger
}

// NewPipeline creates a new enrichment pipeline.
func NewPipeline(extractor Extractor, geocoder Geocoder, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Enrich runs the extractor and geocoder concurrently. When the extractor
// fails or leaves material empty, the local fallback heuristic runs against
// the description. Failures are logged and degraded to an empty record or a
// nil point; Enrich never returns an error.
func (p *Pipeline) Enrich(ctx context.Context, description, location string) (listing.StructuredData, *listing.GeoPoint) {
	var (
		wg         sync.WaitGroup
		structured listing.StructuredData
		point      *listing.GeoPoint
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		data, err := p.extractor.TryExtract(ctx, description)
		if err != nil {
			p.logger.Warn("Structured-data extraction failed, continuing without it", zap.Error(err))
		} else if data != nil {
			structured = *data
		}

		// Fallback extraction depends on the extractor's outcome, so it runs
		// in the same goroutine.
		if _, ok := structured.NormalizedMaterial(); !ok {
			if material := ExtractMaterial(description); material != "" {
				structured.Material = &material
				p.logger.Debug("Fallback extractor recovered material", zap.String("material", material))
			}
		}
	}()

	go func() {
		defer wg.Done()
		resolved, err := p.geocoder.TryGeocode(ctx, location)
		if err != nil {
			p.logger.Warn("Geocoding failed, listing will use default coordinates",
				zap.String("location", location), zap.Error(err))
			return
		}
		point = resolved
	}()

	wg.Wait()
	return structured, point
}
