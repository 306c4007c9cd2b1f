package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the system. Users are owned by the external
// identity provider; this service only creates a local row on first
// authenticated request.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	ProviderID    *string   `json:"provider_id,omitempty"`
	Name          *string   `json:"name,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
