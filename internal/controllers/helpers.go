package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/quantumhotel/hotel-service/internal/middleware"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the caller should
// continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return false
	}
	return true
}

// callerID pulls the authenticated user id out of the request context.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil,
		)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Malformed userID in context", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the {id} path variable.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed id in path", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}

/*
respondServiceError maps the domain sentinels onto HTTP statuses. Both
no_availability and conflict land on 409 but keep distinct codes: the former
means the allocator never found a unit, the latter means a competing
reservation took it.
*/
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrInvalidRange):
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidRange,
			"Stay range must be non-empty and must not start in the past", nil,
		)
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil,
		)
	case errors.Is(err, utils.ErrNoAvailability):
		utils.RespondErrorWithCode(
			w, http.StatusConflict, utils.ErrCodeNoAvailability,
			"No unit is available for the requested period", nil,
		)
	case errors.Is(err, utils.ErrConflict):
		utils.RespondErrorWithCode(
			w, http.StatusConflict, utils.ErrCodeConflict,
			"An overlapping reservation exists for the unit", nil,
		)
	case errors.Is(err, utils.ErrForbidden):
		utils.RespondErrorWithCode(
			w, http.StatusForbidden, utils.ErrCodeForbidden,
			"You may not act on this reservation", nil,
		)
	case errors.Is(err, utils.ErrInvalidState):
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidState,
			"Reservation is no longer pending", nil,
		)
	case errors.Is(err, utils.ErrRowVersionConflict):
		utils.RespondErrorWithCode(
			w, http.StatusConflict, utils.ErrCodeConflict,
			"Reservation was modified concurrently; retry", nil,
		)
	default:
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, fallback, nil, err,
		)
	}
}
