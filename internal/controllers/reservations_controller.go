package controllers

import (
	"net/http"

	"github.com/quantumhotel/hotel-service/internal/dtos"
	"github.com/quantumhotel/hotel-service/internal/services"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

// ReservationsController is the guest-facing booking surface.
type ReservationsController struct {
	reservations *services.ReservationService
}

func NewReservationsController(rs *services.ReservationService) *ReservationsController {
	return &ReservationsController{reservations: rs}
}

// CreateHandler => POST /api/v1/reservations
func (c *ReservationsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	guestID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dtos.ReservationCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := c.reservations.Create(r.Context(), guestID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, services.ToReservationDTO(created))
}

// ListMineHandler => GET /api/v1/reservations
func (c *ReservationsController) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	guestID, ok := callerID(w, r)
	if !ok {
		return
	}
	list, err := c.reservations.FindMine(r.Context(), guestID)
	if err != nil {
		respondServiceError(w, err, "Failed to list reservations")
		return
	}
	resp := dtos.ListReservationsResponse{Results: make([]dtos.ReservationDTO, 0, len(list))}
	for _, res := range list {
		resp.Results = append(resp.Results, services.ToReservationDTO(res))
	}
	resp.Total = len(resp.Results)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHandler => GET /api/v1/reservations/{id}
func (c *ReservationsController) GetHandler(w http.ResponseWriter, r *http.Request) {
	guestID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	details, err := c.reservations.GetDetails(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to load reservation")
		return
	}
	if details.GuestID != guestID {
		respondServiceError(w, utils.ErrForbidden, "")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, details)
}

// PatchHandler => PATCH /api/v1/reservations/{id}
func (c *ReservationsController) PatchHandler(w http.ResponseWriter, r *http.Request) {
	guestID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.ReservationPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.reservations.PatchOwn(r.Context(), guestID, id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.ToReservationDTO(updated))
}
