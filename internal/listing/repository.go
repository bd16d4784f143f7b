// File: internal/listing/repository.go
package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"synapse_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for listing data operations.
type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id uuid.UUID, preloadOwner bool) (*Listing, error)
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]Listing, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Listing, error)
	FindOpenByType(ctx context.Context, listingType ListingType, excludeID uuid.UUID) ([]Listing, error)
	CloseStaleOpen(ctx context.Context, olderThan time.Time) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM listing repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, listing *Listing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID, preloadOwner bool) (*Listing, error) {
	var listing Listing
	query := r.db.WithContext(ctx)
	if preloadOwner {
		query = query.Preload("PostedBy")
	}
	if err := query.First(&listing, "listings.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Listing not found.")
		}
		return nil, err
	}
	return &listing, nil
}

func (r *gormRepository) Update(ctx context.Context, listing *Listing) error {
	if err := r.db.WithContext(ctx).Save(listing).Error; err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Listing not found or already deleted.")
	}
	return nil
}

// FindAll retrieves every listing, newest first, with the owner joined for
// identity display.
func (r *gormRepository) FindAll(ctx context.Context) ([]Listing, error) {
	var listings []Listing
	err := r.db.WithContext(ctx).
		Preload("PostedBy").
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

func (r *gormRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]Listing, error) {
	var listings []Listing
	err := r.db.WithContext(ctx).
		Where("posted_by_id = ?", userID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user listings: %w", err)
	}
	return listings, nil
}

// FindOpenByType retrieves the match candidate pool: open listings of the
// given type, excluding the source listing itself.
func (r *gormRepository) FindOpenByType(ctx context.Context, listingType ListingType, excludeID uuid.UUID) ([]Listing, error) {
	var listings []Listing
	err := r.db.WithContext(ctx).
		Preload("PostedBy").
		Where("listing_type = ? AND status = ? AND id != ?", listingType, StatusOpen, excludeID).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate listings: %w", err)
	}
	return listings, nil
}

// CloseStaleOpen marks open listings created before the cutoff as closed and
// returns how many were affected.
func (r *gormRepository) CloseStaleOpen(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Listing{}).
		Where("status = ? AND created_at < ?", StatusOpen, olderThan).
		Update("status", StatusClosed)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close stale listings: %w", result.Error)
	}
	return result.RowsAffected, nil
}
