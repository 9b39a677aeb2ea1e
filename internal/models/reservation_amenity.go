package models

import "github.com/google/uuid"

// ReservationAmenity is a quantified amenity attached to one reservation.
// Line items are owned exclusively by their reservation: they are deleted
// with it, and removed when reconciliation drops their quantity to zero.
type ReservationAmenity struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	AmenityID     uuid.UUID `json:"amenity_id"`
	Quantity      int       `json:"quantity"`
}
