package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/dtos"
	"github.com/quantumhotel/hotel-service/internal/events"
	"github.com/quantumhotel/hotel-service/internal/interval"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/*
ReservationService is the booking facade. It orchestrates availability search,
unit allocation, the reservation state machine and amenity reconciliation,
and fires notifications strictly after the state change has committed.
*/
type ReservationService struct {
	resRepo      repositories.ReservationRepository
	catRepo      repositories.CategoryRepository
	unitRepo     repositories.UnitRepository
	amenityRepo  repositories.AmenityRepository
	userRepo     repositories.UserRepository
	availability *AvailabilityService
	notifier     NotificationService
	publisher    events.Publisher
}

func NewReservationService(
	resRepo repositories.ReservationRepository,
	catRepo repositories.CategoryRepository,
	unitRepo repositories.UnitRepository,
	amenityRepo repositories.AmenityRepository,
	userRepo repositories.UserRepository,
	availability *AvailabilityService,
	notifier NotificationService,
	publisher events.Publisher,
) *ReservationService {
	return &ReservationService{
		resRepo:      resRepo,
		catRepo:      catRepo,
		unitRepo:     unitRepo,
		amenityRepo:  amenityRepo,
		userRepo:     userRepo,
		availability: availability,
		notifier:     notifier,
		publisher:    publisher,
	}
}

func parseStayDate(s string) time.Time {
	// Format is enforced by DTO validation before we get here.
	t, _ := time.Parse(dtos.DateLayout, s)
	return t
}

/* ================= guest ================= */

// Create allocates a unit and books a PENDING reservation for the guest.
func (s *ReservationService) Create(ctx context.Context, guestID uuid.UUID, req dtos.ReservationCreateRequest) (*models.Reservation, error) {
	guest, err := s.userRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, utils.ErrNotFound
	}

	from := parseStayDate(req.DateFrom)
	to := parseStayDate(req.DateTo)
	if err := s.availability.ValidateStayRange(from, to); err != nil {
		return nil, err
	}

	unit, err := s.availability.FindFreeUnit(ctx, req.CategoryID, from, to)
	if err != nil {
		return nil, err
	}

	r := &models.Reservation{
		ID:         uuid.New(),
		GuestID:    guestID,
		CategoryID: req.CategoryID,
		UnitID:     unit.ID,
		DateFrom:   from,
		DateTo:     to,
		Status:     models.ReservationStatusPending,
	}

	// Unknown amenity ids fail the whole create; only the patch merge skips
	// them silently.
	if err := s.applyAmenityRequests(ctx, r, req.Amenities, true); err != nil {
		return nil, err
	}

	created, err := s.resRepo.CreateAtomic(ctx, r)
	if err != nil {
		return nil, err
	}

	s.availability.InvalidateCache(ctx)
	s.publisher.PublishReservationEvent(ctx, events.EventReservationCreated, created)
	return created, nil
}

func (s *ReservationService) FindMine(ctx context.Context, guestID uuid.UUID) ([]*models.Reservation, error) {
	return s.resRepo.ListByGuestID(ctx, guestID)
}

// PatchOwn lets the owning guest move dates and merge amenity line items on
// a PENDING reservation.
func (s *ReservationService) PatchOwn(ctx context.Context, guestID uuid.UUID, reservationID uuid.UUID, req dtos.ReservationPatchRequest) (*models.Reservation, error) {
	r, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, utils.ErrNotFound
	}
	if r.GuestID != guestID {
		return nil, utils.ErrForbidden
	}

	updated, err := s.patchPending(ctx, r, req, nil)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishReservationEvent(ctx, events.EventReservationUpdated, updated)
	return updated, nil
}

/* ================= staff ================= */

func (s *ReservationService) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	return s.resRepo.ListAll(ctx)
}

// Confirm drives PENDING→CONFIRMED. The overlap gate and the write happen in
// one transaction under the unit row lock: of two racing confirms on
// overlapping stays, exactly one wins and the other observes the conflict.
func (s *ReservationService) Confirm(ctx context.Context, staffID uuid.UUID, reservationID uuid.UUID) (*models.Reservation, error) {
	if _, err := s.requireUser(ctx, staffID); err != nil {
		return nil, err
	}
	r, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, utils.ErrNotFound
	}

	updated, err := s.resRepo.ConfirmAtomic(ctx, reservationID, staffID, r.RowVersion)
	if errors.Is(err, utils.ErrRowVersionConflict) {
		// Someone moved the reservation in between; retry once against the
		// fresh version. A state change surfaces as ErrInvalidState instead.
		latest, gerr := s.resRepo.GetByID(ctx, reservationID)
		if gerr != nil || latest == nil {
			return nil, err
		}
		updated, err = s.resRepo.ConfirmAtomic(ctx, reservationID, staffID, latest.RowVersion)
	}
	if err != nil {
		return nil, err
	}

	s.availability.InvalidateCache(ctx)
	s.notifyGuest(ctx, updated, func(guest *models.User) {
		s.notifier.ReservationConfirmed(ctx, guest, updated)
	})
	s.publisher.PublishReservationEvent(ctx, events.EventReservationConfirmed, updated)
	return updated, nil
}

// Reject drives PENDING→REJECTED. No overlap gate: rejecting frees nothing
// that was held.
func (s *ReservationService) Reject(ctx context.Context, staffID uuid.UUID, reservationID uuid.UUID, reason *string) (*models.Reservation, error) {
	if _, err := s.requireUser(ctx, staffID); err != nil {
		return nil, err
	}
	r, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, utils.ErrNotFound
	}

	updated, err := s.resRepo.RejectAtomic(ctx, reservationID, staffID, reason, r.RowVersion)
	if errors.Is(err, utils.ErrRowVersionConflict) {
		latest, gerr := s.resRepo.GetByID(ctx, reservationID)
		if gerr != nil || latest == nil {
			return nil, err
		}
		updated, err = s.resRepo.RejectAtomic(ctx, reservationID, staffID, reason, latest.RowVersion)
	}
	if err != nil {
		return nil, err
	}

	s.notifyGuest(ctx, updated, func(guest *models.User) {
		s.notifier.ReservationRejected(ctx, guest, updated, reason)
	})
	s.publisher.PublishReservationEvent(ctx, events.EventReservationRejected, updated)
	return updated, nil
}

// PatchAsStaff edits dates/amenities of any PENDING reservation, stamps the
// processed fields without changing status, and notifies the guest.
func (s *ReservationService) PatchAsStaff(ctx context.Context, staffID uuid.UUID, reservationID uuid.UUID, req dtos.ReservationPatchRequest) (*models.Reservation, error) {
	if _, err := s.requireUser(ctx, staffID); err != nil {
		return nil, err
	}
	r, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, utils.ErrNotFound
	}

	updated, err := s.patchPending(ctx, r, req, &staffID)
	if err != nil {
		return nil, err
	}

	s.notifyGuest(ctx, updated, func(guest *models.User) {
		s.notifier.ReservationUpdated(ctx, guest, updated)
	})
	s.publisher.PublishReservationEvent(ctx, events.EventReservationUpdated, updated)
	return updated, nil
}

/* ================= details / listing ================= */

func ToReservationDTO(r *models.Reservation) dtos.ReservationDTO {
	return dtos.ReservationDTO{
		ID:          r.ID,
		GuestID:     r.GuestID,
		CategoryID:  r.CategoryID,
		UnitID:      r.UnitID,
		DateFrom:    r.DateFrom.Format(dtos.DateLayout),
		DateTo:      r.DateTo.Format(dtos.DateLayout),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ProcessedAt: r.ProcessedAt,
		RowVersion:  r.RowVersion,
	}
}

// GetDetails resolves catalog context and computes the stay and amenity
// totals for one reservation.
func (s *ReservationService) GetDetails(ctx context.Context, reservationID uuid.UUID) (*dtos.ReservationDetailsDTO, error) {
	r, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, utils.ErrNotFound
	}

	cat, err := s.catRepo.GetByID(ctx, r.CategoryID)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.GetByID(ctx, r.UnitID)
	if err != nil {
		return nil, err
	}

	nights := interval.Nights(r.DateFrom, r.DateTo)
	details := &dtos.ReservationDetailsDTO{
		ReservationDTO: ToReservationDTO(r),
		Nights:         nights,
		Reason:         r.Reason,
		LineItems:      []dtos.ReservationLineItemDTO{},
	}
	if cat != nil {
		details.CategoryName = cat.Name
		details.StayTotalCents = int64(nights) * cat.PriceCents
	}
	if unit != nil {
		details.RoomNumber = unit.RoomNumber
	}

	var amenitiesTotal int64
	for _, item := range r.Amenities {
		amenity, err := s.amenityRepo.GetByID(ctx, item.AmenityID)
		if err != nil {
			return nil, err
		}
		line := dtos.ReservationLineItemDTO{
			AmenityID: item.AmenityID,
			Quantity:  item.Quantity,
		}
		if amenity != nil {
			line.Name = amenity.Name
			line.UnitPriceCents = amenity.PriceCents
			line.TotalCents = int64(item.Quantity) * amenity.PriceCents
		}
		amenitiesTotal += line.TotalCents
		details.LineItems = append(details.LineItems, line)
	}
	details.GrandTotalCents = details.StayTotalCents + amenitiesTotal
	return details, nil
}

/* ================= internal ================= */

func (s *ReservationService) requireUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

// patchPending applies field updates and the amenity merge to the in-memory
// aggregate, then persists dates and the reconciled line-item set in one
// transaction so a patch touching both is validated once, atomically.
func (s *ReservationService) patchPending(ctx context.Context, r *models.Reservation, req dtos.ReservationPatchRequest, processedBy *uuid.UUID) (*models.Reservation, error) {
	if r.Status != models.ReservationStatusPending {
		return nil, utils.ErrInvalidState
	}

	if req.DateFrom != nil {
		r.DateFrom = parseStayDate(*req.DateFrom)
	}
	if req.DateTo != nil {
		r.DateTo = parseStayDate(*req.DateTo)
	}
	if !r.DateTo.After(r.DateFrom) {
		return nil, utils.ErrInvalidRange
	}

	if err := s.applyAmenityRequests(ctx, r, req.Amenities, false); err != nil {
		return nil, err
	}

	updated, err := s.resRepo.UpdatePendingAtomic(ctx, r, r.RowVersion, processedBy)
	if err != nil {
		return nil, err
	}
	s.availability.InvalidateCache(ctx)
	return updated, nil
}

/*
applyAmenityRequests merges a requested amenity list into the reservation's
line items:

  - amenity unknown to the catalog → error when strict, skipped otherwise
  - quantity 0 and a line item exists → remove it
  - quantity > 0 and a line item exists → update its quantity
  - quantity > 0 and no line item → create one

Entries not mentioned in the request stay untouched.
*/
func (s *ReservationService) applyAmenityRequests(ctx context.Context, r *models.Reservation, reqs []dtos.AmenityRequest, strict bool) error {
	for _, req := range reqs {
		amenity, err := s.amenityRepo.GetByID(ctx, req.AmenityID)
		if err != nil {
			return err
		}
		if amenity == nil {
			if strict {
				return utils.ErrNotFound
			}
			continue
		}

		idx := r.LineItemFor(req.AmenityID)
		switch {
		case req.Quantity == 0:
			if idx >= 0 {
				r.Amenities = append(r.Amenities[:idx], r.Amenities[idx+1:]...)
			}
		case idx >= 0:
			r.Amenities[idx].Quantity = req.Quantity
		default:
			r.Amenities = append(r.Amenities, models.ReservationAmenity{
				ID:            uuid.New(),
				ReservationID: r.ID,
				AmenityID:     req.AmenityID,
				Quantity:      req.Quantity,
			})
		}
	}
	return nil
}

func (s *ReservationService) notifyGuest(ctx context.Context, r *models.Reservation, deliver func(*models.User)) {
	guest, err := s.userRepo.GetByID(ctx, r.GuestID)
	if err != nil || guest == nil {
		utils.Logger.WithError(err).Warnf("Could not resolve guest %s for notification", r.GuestID)
		return
	}
	deliver(guest)
}
