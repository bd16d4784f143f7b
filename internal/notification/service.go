// File: internal/notification/service.go
package notification

import (
	"context"

	"synapse_backend/internal/common"
	"synapse_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for notification business logic.
type Service interface {
	Send(ctx context.Context, senderID uuid.UUID, req SendNotificationRequest) (*Notification, error)
	ListForReceiver(ctx context.Context, receiverID uuid.UUID) ([]Notification, error)
}

type serviceImpl struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, userRepo user.Repository, logger *zap.Logger) Service {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger.Named("NotificationService"),
	}
}

// Send stores a notification from the authenticated sender to the receiver.
// The receiver must exist; the sender is taken from the token and is trusted
// to exist already.
func (s *serviceImpl) Send(ctx context.Context, senderID uuid.UUID, req SendNotificationRequest) (*Notification, error) {
	if _, err := s.userRepo.FindByID(ctx, req.ReceiverID); err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.Code == common.ErrNotFound.Code {
			return nil, common.ErrNotFound.WithDetails("Receiver not found.")
		}
		s.logger.Error("Failed to look up receiver", zap.String("receiverID", req.ReceiverID.String()), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to send notification.")
	}

	notification := &Notification{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Error("Failed to store notification", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to send notification.")
	}

	s.logger.Info("Notification sent",
		zap.String("senderID", senderID.String()),
		zap.String("receiverID", req.ReceiverID.String()))
	return notification, nil
}

// ListForReceiver returns the receiver's notifications newest first.
func (s *serviceImpl) ListForReceiver(ctx context.Context, receiverID uuid.UUID) ([]Notification, error) {
	notifications, err := s.repo.FindByReceiver(ctx, receiverID)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.String("receiverID", receiverID.String()), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to fetch notifications.")
	}
	return notifications, nil
}
