// File: internal/listing/model.go
package listing

import (
	"strings"
	"time"

	"synapse_backend/internal/common"
	"synapse_backend/internal/user"

	"github.com/google/uuid"
)

// ListingType distinguishes surplus offers from material requests.
type ListingType string

const (
	TypeOffer   ListingType = "OFFER"
	TypeRequest ListingType = "REQUEST"
)

// Opposite returns the complementary listing type used for match candidates.
func (t ListingType) Opposite() ListingType {
	if t == TypeOffer {
		return TypeRequest
	}
	return TypeOffer
}

// ListingStatus tracks the lifecycle of a listing.
type ListingStatus string

const (
	StatusOpen    ListingStatus = "open"
	StatusMatched ListingStatus = "matched"
	StatusClosed  ListingStatus = "closed"
)

// Default coordinates used when geocoding is unset or unavailable.
const (
	DefaultLongitude = 73.8567
	DefaultLatitude  = 18.5204
)

// GeoPoint is a longitude/latitude pair.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// StructuredData holds the machine-extracted attributes of a listing's
// description. Every field is optional; the extractor may populate any subset.
type StructuredData struct {
	Material  *string  `gorm:"column:material;type:varchar(150)" json:"material,omitempty"`
	Quantity  *float64 `gorm:"column:quantity" json:"quantity,omitempty"`
	Unit      *string  `gorm:"column:unit;type:varchar(50)" json:"unit,omitempty"`
	Frequency *string  `gorm:"column:frequency;type:varchar(50)" json:"frequency,omitempty"`
}

// NormalizedMaterial returns the material lower-cased and trimmed, with a flag
// indicating whether a usable value is present. Matching always compares
// materials in this form.
func (d StructuredData) NormalizedMaterial() (string, bool) {
	if d.Material == nil {
		return "", false
	}
	m := strings.ToLower(strings.TrimSpace(*d.Material))
	return m, m != ""
}

// Listing is a posted offer or request for a material.
type Listing struct {
	common.BaseModel
	PostedByID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	PostedBy       *user.User     `gorm:"foreignKey:PostedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ListingType    ListingType    `gorm:"type:varchar(10);not null"`
	Description    string         `gorm:"type:text;not null"`
	StructuredData StructuredData `gorm:"embedded;embeddedPrefix:sd_"`
	Location       string         `gorm:"type:varchar(255);not null"`
	Longitude      float64        `gorm:"not null;default:73.8567"`
	Latitude       float64        `gorm:"not null;default:18.5204"`
	Status         ListingStatus  `gorm:"type:varchar(20);not null;default:'open';index"`
}

// TableName specifies the table name for GORM.
func (Listing) TableName() string {
	return "listings"
}

// --- DTOs for API ---

type CreateListingRequest struct {
	ListingType ListingType `json:"listingType" binding:"required,oneof=OFFER REQUEST"`
	Description string      `json:"description" binding:"required"`
	Location    string      `json:"location" binding:"required,max=255"`
}

// UpdateListingRequest carries the editable fields. Listing type and owner are
// immutable after creation.
type UpdateListingRequest struct {
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required,max=255"`
}

type ListingResponse struct {
	ID             uuid.UUID           `json:"id"`
	PostedBy       user.PublicIdentity `json:"postedBy"`
	ListingType    ListingType         `json:"listingType"`
	Description    string              `json:"description"`
	StructuredData StructuredData      `json:"structuredData"`
	Location       string              `json:"location"`
	Geolocation    GeoPoint            `json:"geolocation"`
	Status         ListingStatus       `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ToListingResponse converts a Listing model to its API representation.
// StructuredData and Geolocation are always present, possibly with default or
// empty values, so clients never see a null there.
func ToListingResponse(l *Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID,
		PostedBy:       user.ToPublicIdentity(l.PostedBy),
		ListingType:    l.ListingType,
		Description:    l.Description,
		StructuredData: l.StructuredData,
		Location:       l.Location,
		Geolocation:    GeoPoint{Longitude: l.Longitude, Latitude: l.Latitude},
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
