package controllers

import (
	"net/http"

	"github.com/quantumhotel/hotel-service/internal/dtos"
	"github.com/quantumhotel/hotel-service/internal/services"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

// AdminReservationsController is the back-office processing surface. Route
// registration puts it behind the staff middleware.
type AdminReservationsController struct {
	reservations *services.ReservationService
}

func NewAdminReservationsController(rs *services.ReservationService) *AdminReservationsController {
	return &AdminReservationsController{reservations: rs}
}

// ListHandler => GET /api/v1/admin/reservations
func (c *AdminReservationsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.reservations.ListAll(r.Context())
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

// GetHandler => GET /api/v1/admin/reservations/{id}
func (c *AdminReservationsController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	details, err := c.reservations.GetDetails(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to load reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, details)
}

// ConfirmHandler => POST /api/v1/admin/reservations/{id}/confirm
func (c *AdminReservationsController) ConfirmHandler(w http.ResponseWriter, r *http.Request) {
	staffID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	confirmed, err := c.reservations.Confirm(r.Context(), staffID, id)
	if err != nil {
		respondServiceError(w, err, "Failed to confirm reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.ToReservationDTO(confirmed))
}

// RejectHandler => POST /api/v1/admin/reservations/{id}/reject
func (c *AdminReservationsController) RejectHandler(w http.ResponseWriter, r *http.Request) {
	staffID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.ReservationRejectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	rejected, err := c.reservations.Reject(r.Context(), staffID, id, req.Reason)
	if err != nil {
		respondServiceError(w, err, "Failed to reject reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.ToReservationDTO(rejected))
}

// PatchHandler => PATCH /api/v1/admin/reservations/{id}
func (c *AdminReservationsController) PatchHandler(w http.ResponseWriter, r *http.Request) {
	staffID, ok := callerID(w, r)
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
	updated, err := c.reservations.PatchAsStaff(r.Context(), staffID, id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.ToReservationDTO(updated))
}
