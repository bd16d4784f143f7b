// File: internal/listing/matcher.go
package listing

import (
	"context"
	"strings"

	"synapse_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Matcher computes candidate matches between complementary listings. Matching
// is a pure read: it never mutates listing status or any other field.
type Matcher struct {
	repo   Repository
	logger *zap.Logger
}

// NewMatcher creates a new Matcher.
func NewMatcher(repo Repository, logger *zap.Logger) *Matcher {
	return &Matcher{repo: repo, logger: logger}
}

// FindMatches returns all open listings of the opposite type whose material is
// compatible with the source listing's material.
//
// A source listing without extracted material yields the same not-found result
// as a missing listing; the detail message distinguishes the two for clients
// that care.
func (m *Matcher) FindMatches(ctx context.Context, sourceID uuid.UUID) ([]Listing, error) {
	source, err := m.repo.FindByID(ctx, sourceID, false)
	if err != nil {
		return nil, err
	}

	sourceMaterial, ok := source.StructuredData.NormalizedMaterial()
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Listing has no extracted material to match on.")
	}

	candidates, err := m.repo.FindOpenByType(ctx, source.ListingType.Opposite(), source.ID)
	if err != nil {
		m.logger.Error("Failed to load match candidates",
			zap.String("sourceID", sourceID.String()), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve match candidates.")
	}

	matches := make([]Listing, 0, len(candidates))
	for _, candidate := range candidates {
		candidateMaterial, ok := candidate.StructuredData.NormalizedMaterial()
		if !ok {
			continue
		}
		if MaterialsCompatible(sourceMaterial, candidateMaterial) {
			matches = append(matches, candidate)
		}
	}

	m.logger.Debug("Match search completed",
		zap.String("sourceID", sourceID.String()),
		zap.String("material", sourceMaterial),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}

// MaterialsCompatible reports whether two normalized material strings are
// compatible. Compatibility is bidirectional substring containment, so an
// offer of "copper wire" matches a request for "copper" and vice versa. This
// is a deliberately loose heuristic, not an exact or semantic match.
func MaterialsCompatible(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
