package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/services"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ListCategoriesHandler => GET /api/v1/categories
func (c *CatalogController) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	cats, err := c.catalog.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list categories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cats)
}

// GetCategoryHandler => GET /api/v1/categories/{id}
func (c *CatalogController) GetCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cat, err := c.catalog.GetCategory(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to load category")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cat)
}

// ListUnitsHandler => GET /api/v1/admin/units?categoryId=...
func (c *CatalogController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(r.URL.Query().Get("categoryId"))
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing or malformed categoryId", nil, err,
		)
		return
	}
	units, err := c.catalog.ListUnits(r.Context(), categoryID)
	if err != nil {
		respondServiceError(w, err, "Failed to list units")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ListAmenitiesHandler => GET /api/v1/amenities
func (c *CatalogController) ListAmenitiesHandler(w http.ResponseWriter, r *http.Request) {
	amenities, err := c.catalog.ListAmenities(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list amenities")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, amenities)
}

type unitPatchRequest struct {
	IsCleaned        *bool `json:"is_cleaned,omitempty"`
	UnderMaintenance *bool `json:"under_maintenance,omitempty"`
}

// PatchUnitHandler => PATCH /api/v1/admin/units/{id}
func (c *CatalogController) PatchUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req unitPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	unit, err := c.catalog.UpdateUnit(r.Context(), id, req.IsCleaned, req.UnderMaintenance)
	if err != nil {
		respondServiceError(w, err, "Failed to update unit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}
