package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatusType defines the possible states of a reservation.
type ReservationStatusType string

const (
	ReservationStatusPending   ReservationStatusType = "PENDING"
	ReservationStatusConfirmed ReservationStatusType = "CONFIRMED"
	ReservationStatusRejected  ReservationStatusType = "REJECTED"
)

// Reservation is the aggregate root of the booking engine. It owns its
// amenity line items; they are loaded and persisted with it and never
// outlive it. Guest, category and allocated unit are fixed at creation.
type Reservation struct {
	Versioned
	ID          uuid.UUID             `json:"id"`
	GuestID     uuid.UUID             `json:"guest_id"`
	CategoryID  uuid.UUID             `json:"category_id"`
	UnitID      uuid.UUID             `json:"unit_id"`
	DateFrom    time.Time             `json:"date_from"`
	DateTo      time.Time             `json:"date_to"`
	Status      ReservationStatusType `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	ProcessedAt *time.Time            `json:"processed_at,omitempty"`
	ProcessedBy *uuid.UUID            `json:"processed_by,omitempty"`
	Reason      *string               `json:"reason,omitempty"`

	Amenities []ReservationAmenity `json:"amenities"`
}

// LineItemFor returns the index of the line item referencing amenityID,
// or -1 when the reservation carries none.
func (r *Reservation) LineItemFor(amenityID uuid.UUID) int {
	for i := range r.Amenities {
		if r.Amenities[i].AmenityID == amenityID {
			return i
		}
	}
	return -1
}
