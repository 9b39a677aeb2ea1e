package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/dtos"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

// CatalogService serves the read side of the accommodation catalog and the
// small admin write surface for units.
type CatalogService struct {
	catRepo     repositories.CategoryRepository
	unitRepo    repositories.UnitRepository
	amenityRepo repositories.AmenityRepository
}

func NewCatalogService(
	catRepo repositories.CategoryRepository,
	unitRepo repositories.UnitRepository,
	amenityRepo repositories.AmenityRepository,
) *CatalogService {
	return &CatalogService{
		catRepo:     catRepo,
		unitRepo:    unitRepo,
		amenityRepo: amenityRepo,
	}
}

func ToCategoryDTO(c *models.AccommodationCategory) dtos.CategoryDTO {
	return dtos.CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		UnitsNumber:  c.UnitsNumber,
		Capacity:     c.Capacity,
		TwinBeds:     c.TwinBeds,
		PriceCents:   c.PriceCents,
		CheckInTime:  c.CheckInTime,
		CheckOutTime: c.CheckOutTime,
	}
}

func ToUnitDTO(u *models.AccommodationUnit) dtos.UnitDTO {
	return dtos.UnitDTO{
		ID:               u.ID,
		CategoryID:       u.CategoryID,
		RoomNumber:       u.RoomNumber,
		Floor:            u.Floor,
		IsCleaned:        u.IsCleaned,
		UnderMaintenance: u.UnderMaintenance,
	}
}

func ToAmenityDTO(a *models.Amenity) dtos.AmenityDTO {
	return dtos.AmenityDTO{
		ID:          a.ID,
		Name:        a.Name,
		PriceCents:  a.PriceCents,
		Description: a.Description,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]dtos.CategoryDTO, error) {
	cats, err := s.catRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryDTO(c))
	}
	return out, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*dtos.CategoryDTO, error) {
	c, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.ErrNotFound
	}
	dto := ToCategoryDTO(c)
	return &dto, nil
}

func (s *CatalogService) ListUnits(ctx context.Context, categoryID uuid.UUID) ([]dtos.UnitDTO, error) {
	cat, err := s.catRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, utils.ErrNotFound
	}
	units, err := s.unitRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.UnitDTO, 0, len(units))
	for _, u := range units {
		out = append(out, ToUnitDTO(u))
	}
	return out, nil
}

func (s *CatalogService) ListAmenities(ctx context.Context) ([]dtos.AmenityDTO, error) {
	list, err := s.amenityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.AmenityDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAmenityDTO(a))
	}
	return out, nil
}

// UpdateUnit flips housekeeping flags on a unit.
func (s *CatalogService) UpdateUnit(ctx context.Context, id uuid.UUID, isCleaned, underMaintenance *bool) (*dtos.UnitDTO, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}
	if isCleaned != nil {
		u.IsCleaned = *isCleaned
	}
	if underMaintenance != nil {
		u.UnderMaintenance = *underMaintenance
	}
	if err := s.unitRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	dto := ToUnitDTO(u)
	return &dto, nil
}
