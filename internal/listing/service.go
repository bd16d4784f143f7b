// File: internal/listing/service.go
package listing

import (
	"context"
	"time"

	"synapse_backend/internal/common"
	"synapse_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Enricher produces best-effort structured data and coordinates for a listing
// at write time. Implementations never fail: a degraded result is an empty
// record and a nil point.
type Enricher interface {
	Enrich(ctx context.Context, description, location string) (StructuredData, *GeoPoint)
}

// Service defines the interface for listing-related business logic.
type Service interface {
	CreateListing(ctx context.Context, userID uuid.UUID, req CreateListingRequest) (*Listing, error)
	GetListingByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	GetAllListings(ctx context.Context) ([]Listing, error)
	GetUserListings(ctx context.Context, userID uuid.UUID) ([]Listing, error)
	UpdateListing(ctx context.Context, id uuid.UUID, userID uuid.UUID, req UpdateListingRequest) (*Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	FindMatches(ctx context.Context, sourceID uuid.UUID) ([]Listing, error)

	// Jobs related (called by the stale-listing cron job)
	CloseStaleListings(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	enricher Enricher
	matcher  *Matcher
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService creates a new listing service.
func NewService(repo Repository, enricher Enricher, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		enricher: enricher,
		matcher:  NewMatcher(repo, logger.Named("Matcher")),
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateListing enriches the submitted text and persists the listing.
// Enrichment is best-effort: extractor or geocoder failures degrade to empty
// structured data or the default coordinates, never to a write failure.
func (s *service) CreateListing(ctx context.Context, userID uuid.UUID, req CreateListingRequest) (*Listing, error) {
	structured, point := s.enricher.Enrich(ctx, req.Description, req.Location)

	newListing := &Listing{
		PostedByID:     userID,
		ListingType:    req.ListingType,
		Description:    req.Description,
		StructuredData: structured,
		Location:       req.Location,
		Longitude:      DefaultLongitude,
		Latitude:       DefaultLatitude,
		Status:         StatusOpen,
	}
	if point != nil {
		newListing.Longitude = point.Longitude
		newListing.Latitude = point.Latitude
	}

	if err := s.repo.Create(ctx, newListing); err != nil {
		s.logger.Error("Failed to create listing in repository", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not create listing.")
	}

	// Reload with the owner association for the response.
	created, err := s.repo.FindByID(ctx, newListing.ID, true)
	if err != nil {
		s.logger.Error("Failed to reload created listing", zap.String("listingID", newListing.ID.String()), zap.Error(err))
		return newListing, nil
	}

	s.logger.Info("Listing created",
		zap.String("listingID", created.ID.String()),
		zap.String("type", string(created.ListingType)),
		zap.Bool("materialExtracted", created.StructuredData.Material != nil),
		zap.Bool("geocoded", point != nil),
	)
	return created, nil
}

// GetListingByID retrieves a single listing with its owner.
func (s *service) GetListingByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.FindByID(ctx, id, true)
}

// GetAllListings retrieves all listings, newest first.
func (s *service) GetAllListings(ctx context.Context) ([]Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list listings", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve listings.")
	}
	return listings, nil
}

// GetUserListings retrieves the authenticated user's own listings.
func (s *service) GetUserListings(ctx context.Context, userID uuid.UUID) ([]Listing, error) {
	listings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list user listings", zap.String("userID", userID.String()), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve your listings.")
	}
	return listings, nil
}

// UpdateListing re-runs enrichment over the new text and saves the listing.
// Only the owner may update; listing type and owner are immutable.
func (s *service) UpdateListing(ctx context.Context, id uuid.UUID, userID uuid.UUID, req UpdateListingRequest) (*Listing, error) {
	existing, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if existing.PostedByID != userID {
		s.logger.Warn("User attempted to update a listing they do not own",
			zap.String("listingID", id.String()),
			zap.String("editorUserID", userID.String()),
			zap.String("ownerUserID", existing.PostedByID.String()))
		return nil, common.ErrForbidden.WithDetails("You do not have permission to update this listing.")
	}

	structured, point := s.enricher.Enrich(ctx, req.Description, req.Location)

	existing.Description = req.Description
	existing.Location = req.Location
	existing.StructuredData = structured
	if point != nil {
		existing.Longitude = point.Longitude
		existing.Latitude = point.Latitude
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update listing in repository", zap.Error(err), zap.String("listingID", id.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not update listing.")
	}

	updated, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		s.logger.Error("Failed to reload updated listing", zap.String("listingID", id.String()), zap.Error(err))
		return existing, nil
	}

	s.logger.Info("Listing updated", zap.String("listingID", updated.ID.String()))
	return updated, nil
}

// DeleteListing removes a listing after an ownership check.
func (s *service) DeleteListing(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if existing.PostedByID != userID {
		return common.ErrForbidden.WithDetails("You do not have permission to delete this listing.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete listing", zap.Error(err), zap.String("listingID", id.String()))
		return err
	}
	s.logger.Info("Listing deleted", zap.String("listingID", id.String()), zap.String("userID", userID.String()))
	return nil
}

// FindMatches returns open opposite-type listings with a compatible material.
func (s *service) FindMatches(ctx context.Context, sourceID uuid.UUID) ([]Listing, error) {
	return s.matcher.FindMatches(ctx, sourceID)
}

// CloseStaleListings closes open listings that have outlived the configured age.
func (s *service) CloseStaleListings(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.StaleListingDays)
	count, err := s.repo.CloseStaleOpen(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to close stale listings", zap.Error(err))
		return 0, err
	}
	return count, nil
}
