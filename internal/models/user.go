package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleType defines the authorization roles known to the booking engine.
type RoleType string

const (
	RoleGuest RoleType = "GUEST"
	RoleStaff RoleType = "STAFF"
	RoleAdmin RoleType = "ADMIN"
)

// IsStaff reports whether the role may act on other guests' reservations.
func (r RoleType) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User is the resolved caller identity. Credential handling lives entirely
// outside the engine; this is what the identity resolver hands back.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Role        RoleType  `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
