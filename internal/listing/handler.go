// File: internal/listing/handler.go
package listing

import (
	"errors"

	"synapse_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for listing handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new listing handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for listing operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	listingGroup := router.Group("/listings")
	{
		listingGroup.GET("", h.getAllListings)

		authedGroup := listingGroup.Group("")
		authedGroup.Use(authMW)
		{
			authedGroup.POST("", h.createListing)
			authedGroup.GET("/mine", h.getMyListings)
			authedGroup.PUT("/:id", h.updateListing)
			authedGroup.DELETE("/:id", h.deleteListing)
		}

		// Parameterized routes registered after /mine so gin resolves the
		// static segment first.
		listingGroup.GET("/:id", h.getListingByID)
		listingGroup.GET("/:id/matches", h.findMatches)
	}
}

func (h *Handler) createListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create listing: invalid request body", zap.Error(err), zap.String("userID", userID.String()))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request body: "+err.Error()))
		return
	}

	created, err := h.service.CreateListing(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Listing created successfully.", ToListingResponse(created))
}

func (h *Handler) getAllListings(c *gin.Context) {
	listings, err := h.service.GetAllListings(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i])
	}
	common.RespondOK(c, "Listings retrieved successfully.", responses)
}

func (h *Handler) getMyListings(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	listings, err := h.service.GetUserListings(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i])
	}
	common.RespondOK(c, "Successfully retrieved your listings.", responses)
}

func (h *Handler) getListingByID(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid listing ID format."))
		return
	}

	found, err := h.service.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing retrieved successfully.", ToListingResponse(found))
}

func (h *Handler) updateListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid listing ID format."))
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request body: "+err.Error()))
		return
	}

	updated, err := h.service.UpdateListing(c.Request.Context(), listingID, userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing updated successfully.", ToListingResponse(updated))
}

func (h *Handler) deleteListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid listing ID format."))
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), listingID, userID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing removed.", nil)
}

func (h *Handler) findMatches(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid listing ID format."))
		return
	}

	matches, err := h.service.FindMatches(c.Request.Context(), listingID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(matches))
	for i := range matches {
		responses[i] = ToListingResponse(&matches[i])
	}
	common.RespondOK(c, "Matches retrieved successfully.", responses)
}
