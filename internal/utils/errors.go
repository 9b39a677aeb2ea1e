package utils

import "errors"

/*
   Sentinel errors for booking-engine domain logic.
   Controllers dispatch on them with errors.Is(err, ErrXYZ).
*/
var (
	// ErrInvalidRange: dateTo <= dateFrom, or dateFrom in the past.
	ErrInvalidRange = errors.New("invalid_range")

	// ErrNotFound: unknown category/unit/amenity/reservation/user id.
	ErrNotFound = errors.New("not_found")

	// ErrNoAvailability: no free unit for the category and period.
	ErrNoAvailability = errors.New("no_availability")

	// ErrForbidden: caller does not own the reservation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState: mutating a reservation that is no longer PENDING.
	ErrInvalidState = errors.New("invalid_state")

	// ErrConflict: an overlapping reservation was found at confirm/edit time.
	ErrConflict = errors.New("conflict")

	ErrRowVersionConflict = errors.New("row_version_conflict")
)
