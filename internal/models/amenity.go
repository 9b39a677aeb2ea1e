package models

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is an independent catalog entry referenced by reservation line
// items. It is never owned by a reservation.
type Amenity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
