package routes

const (
	// Health
	Health = "/health"

	// Public catalog and search
	Availability = "/api/v1/availability"
	Categories   = "/api/v1/categories"
	CategoryByID = "/api/v1/categories/{id}"
	Amenities    = "/api/v1/amenities"

	// Guest endpoints
	Reservations    = "/api/v1/reservations"
	ReservationsMe  = "/api/v1/reservations/me"
	ReservationByID = "/api/v1/reservations/{id}"

	// Back-office endpoints
	AdminReservations       = "/api/v1/admin/reservations"
	AdminReservationByID    = "/api/v1/admin/reservations/{id}"
	AdminReservationConfirm = "/api/v1/admin/reservations/{id}/confirm"
	AdminReservationReject  = "/api/v1/admin/reservations/{id}/reject"
	AdminUnits              = "/api/v1/admin/units"
	AdminUnitByID           = "/api/v1/admin/units/{id}"
)
