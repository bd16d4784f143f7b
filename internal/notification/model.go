// File: internal/notification/model.go
package notification

import (
	"time"

	"synapse_backend/internal/user"

	"github.com/google/uuid"
)

// Notification is an append-only message from one user to another. There is
// no read/unread state; a notification is immutable once stored.
type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	Sender     *user.User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
	ReceiverID uuid.UUID  `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// --- DTOs for API ---

type SendNotificationRequest struct {
	ReceiverID uuid.UUID `json:"receiverId" binding:"required"`
	Message    string    `json:"message" binding:"required"`
}

type NotificationResponse struct {
	ID        uuid.UUID           `json:"id"`
	Sender    user.PublicIdentity `json:"sender"`
	Message   string              `json:"message"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToNotificationResponse converts a Notification to its API representation
// with the sender's public identity joined in.
func ToNotificationResponse(n *Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Sender:    user.ToPublicIdentity(n.Sender),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
