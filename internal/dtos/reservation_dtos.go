package dtos

import (
	"time"

	"github.com/google/uuid"
)

// Stay boundaries travel as plain dates.
const DateLayout = "2006-01-02"

/*
AmenityRequest is one entry of a requested amenity list. Quantity zero means
"remove the line item for this amenity".
*/
type AmenityRequest struct {
	AmenityID uuid.UUID `json:"amenity_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

type ReservationCreateRequest struct {
	CategoryID uuid.UUID        `json:"category_id" validate:"required"`
	DateFrom   string           `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo     string           `json:"date_to" validate:"required,datetime=2006-01-02"`
	Amenities  []AmenityRequest `json:"amenities,omitempty" validate:"omitempty,dive"`
}

/*
ReservationPatchRequest carries partial updates for a PENDING reservation.
Omitted fields are left untouched; the amenity list is a merge, not a replace.
*/
type ReservationPatchRequest struct {
	DateFrom  *string          `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo    *string          `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Amenities []AmenityRequest `json:"amenities,omitempty" validate:"omitempty,dive"`
}

type ReservationRejectRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

/*
ReservationDTO is the list/summary shape shared by the guest and admin
surfaces.
*/
type ReservationDTO struct {
	ID          uuid.UUID  `json:"id"`
	GuestID     uuid.UUID  `json:"guest_id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	UnitID      uuid.UUID  `json:"unit_id"`
	DateFrom    string     `json:"date_from"`
	DateTo      string     `json:"date_to"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	RowVersion  int64      `json:"row_version"`
}

// ReservationLineItemDTO is one amenity line with catalog context resolved.
type ReservationLineItemDTO struct {
	AmenityID      uuid.UUID `json:"amenity_id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

/*
ReservationDetailsDTO adds line items and the computed totals: flat category
price × nights plus the amenity lines.
*/
type ReservationDetailsDTO struct {
	ReservationDTO
	CategoryName    string                   `json:"category_name"`
	RoomNumber      int                      `json:"room_number"`
	Nights          int                      `json:"nights"`
	StayTotalCents  int64                    `json:"stay_total_cents"`
	LineItems       []ReservationLineItemDTO `json:"line_items"`
	GrandTotalCents int64                    `json:"grand_total_cents"`
	Reason          *string                  `json:"reason,omitempty"`
}

type ListReservationsResponse struct {
	Results []ReservationDTO `json:"results"`
	Total   int              `json:"total"`
}
