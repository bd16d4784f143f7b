// File: internal/places/handler.go
package places

import (
	"net/http"

	"synapse_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the places proxy.
type Handler struct {
	client *Client
	logger *zap.Logger
}

// NewHandler creates a new places handler.
func NewHandler(client *Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger.Named("PlacesHandler")}
}

// RegisterRoutes sets up the routes for the places proxy. Both routes are
// public; the API key stays server-side.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	places := router.Group("/places")
	{
		places.GET("/autocomplete", h.autocomplete)
		places.GET("/details", h.details)
	}
}

func (h *Handler) autocomplete(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("The 'input' query parameter is required."))
		return
	}

	body, err := h.client.Autocomplete(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("Places autocomplete upstream call failed", zap.Error(err))
		common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Place suggestions are temporarily unavailable."))
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (h *Handler) details(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("The 'placeId' query parameter is required."))
		return
	}

	body, err := h.client.Details(c.Request.Context(), placeID)
	if err != nil {
		h.logger.Warn("Places details upstream call failed", zap.Error(err))
		common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Place details are temporarily unavailable."))
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
