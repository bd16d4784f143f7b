package listing

import (
	"context"
	"testing"

	"synapse_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMatcherWithRepo() (*Matcher, *MockListingRepository) {
	repo := new(MockListingRepository)
	return NewMatcher(repo, zap.NewNop()), repo
}

func openListing(id uuid.UUID, listingType ListingType, material string) Listing {
	l := Listing{ListingType: listingType, Status: StatusOpen}
	l.ID = id
	if material != "" {
		l.StructuredData.Material = &material
	}
	return l
}

func TestMatcher_FindMatches_SourceMissing(t *testing.T) {
	matcher, repo := newMatcherWithRepo()
	ctx := context.Background()
	sourceID := uuid.New()

	repo.On("FindByID", ctx, sourceID, false).
		Return(nil, common.ErrNotFound.WithDetails("Listing not found."))

	matches, err := matcher.FindMatches(ctx, sourceID)

	assert.Nil(t, matches)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)
}

func TestMatcher_FindMatches_SourceWithoutMaterial(t *testing.T) {
	matcher, repo := newMatcherWithRepo()
	ctx := context.Background()
	sourceID := uuid.New()

	source := openListing(sourceID, TypeOffer, "")
	repo.On("FindByID", ctx, sourceID, false).Return(&source, nil)

	matches, err := matcher.FindMatches(ctx, sourceID)

	assert.Nil(t, matches)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)
	assert.Equal(t, "Listing has no extracted material to match on.", apiErr.Details)
	repo.AssertNotCalled(t, "FindOpenByType", ctx, TypeRequest, sourceID)
}

func TestMatcher_FindMatches_BidirectionalContainment(t *testing.T) {
	matcher, repo := newMatcherWithRepo()
	ctx := context.Background()
	sourceID := uuid.New()

	source := openListing(sourceID, TypeOffer, "Copper Wire")
	repo.On("FindByID", ctx, sourceID, false).Return(&source, nil)

	broadRequest := openListing(uuid.New(), TypeRequest, "copper")
	unrelated := openListing(uuid.New(), TypeRequest, "glass")
	noMaterial := openListing(uuid.New(), TypeRequest, "")
	repo.On("FindOpenByType", ctx, TypeRequest, sourceID).
		Return([]Listing{broadRequest, unrelated, noMaterial}, nil)

	matches, err := matcher.FindMatches(ctx, sourceID)

	assert.NoError(t, err)
	if assert.Len(t, matches, 1) {
		assert.Equal(t, broadRequest.ID, matches[0].ID)
	}
}

func TestMatcher_FindMatches_RequestFindsBroaderOffer(t *testing.T) {
	matcher, repo := newMatcherWithRepo()
	ctx := context.Background()
	sourceID := uuid.New()

	// The narrow side can sit on either listing; containment runs both ways.
	source := openListing(sourceID, TypeRequest, "steel")
	repo.On("FindByID", ctx, sourceID, false).Return(&source, nil)

	offer := openListing(uuid.New(), TypeOffer, "Stainless Steel scraps")
	repo.On("FindOpenByType", ctx, TypeOffer, sourceID).
		Return([]Listing{offer}, nil)

	matches, err := matcher.FindMatches(ctx, sourceID)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMatcher_FindMatches_NoCompatibleCandidates(t *testing.T) {
	matcher, repo := newMatcherWithRepo()
	ctx := context.Background()
	sourceID := uuid.New()

	source := openListing(sourceID, TypeOffer, "wood")
	repo.On("FindByID", ctx, sourceID, false).Return(&source, nil)
	repo.On("FindOpenByType", ctx, TypeRequest, sourceID).Return([]Listing{}, nil)

	matches, err := matcher.FindMatches(ctx, sourceID)

	assert.NoError(t, err)
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
}

func TestMaterialsCompatible(t *testing.T) {
	assert.True(t, MaterialsCompatible("copper wire", "copper"))
	assert.True(t, MaterialsCompatible("copper", "copper wire"))
	assert.True(t, MaterialsCompatible("steel", "steel"))
	assert.False(t, MaterialsCompatible("steel", "glass"))
}
