// File: internal/user/model.go
package user

import (
	"time"

	"synapse_backend/internal/common"

	"github.com/google/uuid"
)

// User represents a registered company contact.
type User struct {
	common.BaseModel
	Name         string `gorm:"type:varchar(150);not null"`
	Company      string `gorm:"type:varchar(150);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// --- DTOs for API requests/responses ---

// RegisterRequest defines the structure for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	Company  string `json:"company" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"` // bcrypt max is 72 bytes
}

// LoginRequest defines the structure for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicIdentity is the projection of a user shown next to listings and
// notifications: display fields only, never contact or credential data.
type PublicIdentity struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Company:   u.Company,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToPublicIdentity converts a User model to its public projection.
func ToPublicIdentity(u *User) PublicIdentity {
	if u == nil {
		return PublicIdentity{}
	}
	return PublicIdentity{ID: u.ID, Name: u.Name, Company: u.Company}
}
