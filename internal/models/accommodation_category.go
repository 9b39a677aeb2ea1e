package models

import (
	"time"

	"github.com/google/uuid"
)

// AccommodationCategory is a class of units sharing capacity, price and
// amenity profile. Price is a flat per-night rate.
type AccommodationCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	UnitsNumber  int       `json:"units_number"`
	Capacity     int       `json:"capacity"`
	TwinBeds     bool      `json:"twin_beds"`
	PriceCents   int64     `json:"price_cents"`
	CheckInTime  string    `json:"check_in_time"`  // "15:00"
	CheckOutTime string    `json:"check_out_time"` // "11:00"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
