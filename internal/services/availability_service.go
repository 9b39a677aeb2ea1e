package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/interval"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/*
AvailabilityService answers "which categories have room" and "which unit do we
allocate". Allocation checks only against CONFIRMED reservations: a room may
be requested by many pending reservations at once, and the confirm path is
where the gate tightens.
*/
type AvailabilityService struct {
	catRepo  repositories.CategoryRepository
	unitRepo repositories.UnitRepository
	resRepo  repositories.ReservationRepository
	cache    *AvailabilityCache
}

func NewAvailabilityService(
	catRepo repositories.CategoryRepository,
	unitRepo repositories.UnitRepository,
	resRepo repositories.ReservationRepository,
	cache *AvailabilityCache,
) *AvailabilityService {
	return &AvailabilityService{
		catRepo:  catRepo,
		unitRepo: unitRepo,
		resRepo:  resRepo,
		cache:    cache,
	}
}

// ValidateStayRange enforces the search precondition: a non-empty half-open
// range starting today or later.
func (s *AvailabilityService) ValidateStayRange(from, to time.Time) error {
	if !to.After(from) {
		return utils.ErrInvalidRange
	}
	if from.Before(interval.DateOnly(time.Now().UTC())) {
		return utils.ErrInvalidRange
	}
	return nil
}

// FindAvailableCategories returns categories whose capacity equals persons
// exactly (not "at least") and that have a unit free of CONFIRMED overlaps
// in [from, to).
func (s *AvailabilityService) FindAvailableCategories(ctx context.Context, from, to time.Time, persons int) ([]*models.AccommodationCategory, error) {
	if err := s.ValidateStayRange(from, to); err != nil {
		return nil, err
	}

	if cats, ok := s.cache.Get(ctx, from, to, persons); ok {
		return cats, nil
	}

	cats, err := s.catRepo.FindAvailable(ctx, from, to, persons)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, from, to, persons, cats)
	return cats, nil
}

// FindFreeUnit walks the category's units in ascending room-number order and
// returns the first one without a CONFIRMED overlap in the window. The stable
// order makes repeated calls under identical data pick the same unit.
func (s *AvailabilityService) FindFreeUnit(ctx context.Context, categoryID uuid.UUID, from, to time.Time) (*models.AccommodationUnit, error) {
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

	for _, unit := range units {
		conflicts, err := s.resRepo.FindConfirmedOverlaps(ctx, unit.ID, from, to)
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			return unit, nil
		}
	}
	return nil, utils.ErrNoAvailability
}

// HasConflict is the overlap gate for the confirm and pending-edit paths.
// Without an exclusion id it considers CONFIRMED reservations only; with one
// it also considers PENDING siblings, minus the excluded reservation.
func (s *AvailabilityService) HasConflict(ctx context.Context, unitID uuid.UUID, from, to time.Time, excludeID *uuid.UUID) (bool, error) {
	var (
		conflicts []*models.Reservation
		err       error
	)
	if excludeID == nil {
		conflicts, err = s.resRepo.FindConfirmedOverlaps(ctx, unitID, from, to)
	} else {
		conflicts, err = s.resRepo.FindOverlapsExcludingSelf(ctx, unitID, from, to, *excludeID)
	}
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// InvalidateCache drops cached availability searches after a write.
func (s *AvailabilityService) InvalidateCache(ctx context.Context) {
	s.cache.Invalidate(ctx)
}
