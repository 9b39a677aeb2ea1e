package dtos

import "github.com/google/uuid"

/*
AvailabilityQuery is the request DTO for GET /api/v1/availability.
Parsed from query parameters, not a JSON body.
*/
type AvailabilityQuery struct {
	From    string `validate:"required,datetime=2006-01-02"`
	To      string `validate:"required,datetime=2006-01-02"`
	Persons int    `validate:"required,gt=0"`
}

type AvailableCategoryDTO struct {
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	TwinBeds     bool      `json:"twin_beds"`
	PriceCents   int64     `json:"price_cents"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
}

type AvailabilityResponse struct {
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	Persons int                    `json:"persons"`
	Results []AvailableCategoryDTO `json:"results"`
}
