package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/quantumhotel/hotel-service/internal/dtos"
	"github.com/quantumhotel/hotel-service/internal/services"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availability: availability}
}

// SearchHandler => GET /api/v1/availability?from=...&to=...&persons=N
func (c *AvailabilityController) SearchHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	persons, _ := strconv.Atoi(qs.Get("persons"))
	query := dtos.AvailabilityQuery{
		From:    qs.Get("from"),
		To:      qs.Get("to"),
		Persons: persons,
	}
	if err := validate.Struct(query); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Expected from/to as YYYY-MM-DD and persons > 0", nil, err,
		)
		return
	}

	from, _ := time.Parse(dtos.DateLayout, query.From)
	to, _ := time.Parse(dtos.DateLayout, query.To)

	cats, err := c.availability.FindAvailableCategories(r.Context(), from, to, query.Persons)
	if err != nil {
		respondServiceError(w, err, "Availability search failed")
		return
	}

	resp := dtos.AvailabilityResponse{
		From:    query.From,
		To:      query.To,
		Persons: query.Persons,
		Results: make([]dtos.AvailableCategoryDTO, 0, len(cats)),
	}
	for _, cat := range cats {
		resp.Results = append(resp.Results, dtos.AvailableCategoryDTO{
			CategoryID:   cat.ID,
			Name:         cat.Name,
			Capacity:     cat.Capacity,
			TwinBeds:     cat.TwinBeds,
			PriceCents:   cat.PriceCents,
			CheckInTime:  cat.CheckInTime,
			CheckOutTime: cat.CheckOutTime,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
