// File: internal/notification/repository.go
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for notification data operations.
type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]Notification, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM notification repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, notification *Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// FindByReceiver retrieves a user's notifications newest first with the
// sender joined for identity display.
func (r *gormRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("fetching notifications for user %s failed: %w", receiverID, err)
	}
	return notifications, nil
}
