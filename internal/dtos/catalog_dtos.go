package dtos

import "github.com/google/uuid"

type CategoryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	UnitsNumber  int       `json:"units_number"`
	Capacity     int       `json:"capacity"`
	TwinBeds     bool      `json:"twin_beds"`
	PriceCents   int64     `json:"price_cents"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
}

type UnitDTO struct {
	ID               uuid.UUID `json:"id"`
	CategoryID       uuid.UUID `json:"category_id"`
	RoomNumber       int       `json:"room_number"`
	Floor            int       `json:"floor"`
	IsCleaned        bool      `json:"is_cleaned"`
	UnderMaintenance bool      `json:"under_maintenance"`
}

type AmenityDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
}
