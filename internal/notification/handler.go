// File: internal/notification/handler.go
package notification

import (
	"errors"

	"synapse_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for notifications.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new notification handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("NotificationHandler")}
}

// RegisterRoutes sets up the routes for notification operations. Both routes
// require authentication.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	notifications := router.Group("/notifications")
	notifications.Use(authMW)
	{
		notifications.POST("", h.sendNotification)
		notifications.GET("", h.listNotifications)
	}
}

func (h *Handler) sendNotification(c *gin.Context) {
	senderID := common.GetUserIDFromContext(c)
	if senderID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrs)))
		} else {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload: "+err.Error()))
		}
		return
	}

	sent, err := h.service.Send(c.Request.Context(), senderID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Notification sent.", ToNotificationResponse(sent))
}

func (h *Handler) listNotifications(c *gin.Context) {
	receiverID := common.GetUserIDFromContext(c)
	if receiverID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	notifications, err := h.service.ListForReceiver(c.Request.Context(), receiverID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	common.RespondOK(c, "Notifications retrieved successfully.", responses)
}
