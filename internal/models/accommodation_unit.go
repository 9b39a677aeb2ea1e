package models

import (
	"time"

	"github.com/google/uuid"
)

// AccommodationUnit is one physical, bookable room. A unit belongs to exactly
// one category at a time; staff may reassign it.
type AccommodationUnit struct {
	ID               uuid.UUID `json:"id"`
	CategoryID       uuid.UUID `json:"category_id"`
	RoomNumber       int       `json:"room_number"`
	Floor            int       `json:"floor"`
	IsCleaned        bool      `json:"is_cleaned"`
	UnderMaintenance bool      `json:"under_maintenance"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
