package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/interval"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/*
In-memory repository fakes backing the service tests. The reservation fake
mirrors the transactional semantics of the SQL implementation: the same
overlap gates, the same version and status checks, and copies on every read
so nothing persists unless an atomic write ran.
*/

func cloneReservation(r *models.Reservation) *models.Reservation {
	if r == nil {
		return nil
	}
	out := *r
	out.Amenities = append([]models.ReservationAmenity(nil), r.Amenities...)
	if r.ProcessedAt != nil {
		t := *r.ProcessedAt
		out.ProcessedAt = &t
	}
	if r.ProcessedBy != nil {
		id := *r.ProcessedBy
		out.ProcessedBy = &id
	}
	if r.Reason != nil {
		s := *r.Reason
		out.Reason = &s
	}
	return &out
}

type fakeReservationRepo struct {
	byID map[uuid.UUID]*models.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: map[uuid.UUID]*models.Reservation{}}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Reservation, error) {
	return cloneReservation(f.byID[id]), nil
}

func (f *fakeReservationRepo) ListByGuestID(_ context.Context, guestID uuid.UUID) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, r := range f.byID {
		if r.GuestID == guestID {
			out = append(out, cloneReservation(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeReservationRepo) ListAll(_ context.Context) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, r := range f.byID {
		out = append(out, cloneReservation(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeReservationRepo) ListPendingStartedBefore(_ context.Context, cutoff time.Time) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, r := range f.byID {
		if r.Status == models.ReservationStatusPending && r.DateFrom.Before(cutoff) {
			out = append(out, cloneReservation(r))
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindConfirmedOverlaps(_ context.Context, unitID uuid.UUID, from, to time.Time) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, r := range f.byID {
		if r.UnitID == unitID && r.Status == models.ReservationStatusConfirmed &&
			interval.Overlaps(r.DateFrom, r.DateTo, from, to) {
			out = append(out, cloneReservation(r))
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindOverlapsExcludingSelf(_ context.Context, unitID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, r := range f.byID {
		if r.ID == excludeID || r.UnitID != unitID {
			continue
		}
		if r.Status != models.ReservationStatusConfirmed && r.Status != models.ReservationStatusPending {
			continue
		}
		if interval.Overlaps(r.DateFrom, r.DateTo, from, to) {
			out = append(out, cloneReservation(r))
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) CreateAtomic(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	conflicts, _ := f.FindConfirmedOverlaps(ctx, r.UnitID, r.DateFrom, r.DateTo)
	if len(conflicts) > 0 {
		return nil, utils.ErrNoAvailability
	}
	stored := cloneReservation(r)
	stored.Status = models.ReservationStatusPending
	stored.RowVersion = 1
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	f.byID[stored.ID] = stored
	return cloneReservation(stored), nil
}

func (f *fakeReservationRepo) ConfirmAtomic(ctx context.Context, id uuid.UUID, staffID uuid.UUID, expectedVersion int64) (*models.Reservation, error) {
	r := f.byID[id]
	if r == nil {
		return nil, utils.ErrNotFound
	}
	if r.RowVersion != expectedVersion {
		return nil, utils.ErrRowVersionConflict
	}
	if r.Status != models.ReservationStatusPending {
		return nil, utils.ErrInvalidState
	}
	conflicts, _ := f.FindConfirmedOverlaps(ctx, r.UnitID, r.DateFrom, r.DateTo)
	if len(conflicts) > 0 {
		return nil, utils.ErrConflict
	}
	now := time.Now().UTC()
	r.Status = models.ReservationStatusConfirmed
	r.ProcessedAt = &now
	r.ProcessedBy = &staffID
	r.RowVersion++
	return cloneReservation(r), nil
}

func (f *fakeReservationRepo) RejectAtomic(_ context.Context, id uuid.UUID, staffID uuid.UUID, reason *string, expectedVersion int64) (*models.Reservation, error) {
	r := f.byID[id]
	if r == nil {
		return nil, utils.ErrNotFound
	}
	if r.RowVersion != expectedVersion {
		return nil, utils.ErrRowVersionConflict
	}
	if r.Status != models.ReservationStatusPending {
		return nil, utils.ErrInvalidState
	}
	now := time.Now().UTC()
	r.Status = models.ReservationStatusRejected
	r.ProcessedAt = &now
	r.ProcessedBy = &staffID
	r.Reason = reason
	r.RowVersion++
	return cloneReservation(r), nil
}

func (f *fakeReservationRepo) UpdatePendingAtomic(ctx context.Context, updated *models.Reservation, expectedVersion int64, processedBy *uuid.UUID) (*models.Reservation, error) {
	r := f.byID[updated.ID]
	if r == nil {
		return nil, utils.ErrNotFound
	}
	if r.RowVersion != expectedVersion {
		return nil, utils.ErrRowVersionConflict
	}
	if r.Status != models.ReservationStatusPending {
		return nil, utils.ErrInvalidState
	}
	conflicts, _ := f.FindOverlapsExcludingSelf(ctx, r.UnitID, updated.DateFrom, updated.DateTo, r.ID)
	if len(conflicts) > 0 {
		return nil, utils.ErrConflict
	}
	r.DateFrom = updated.DateFrom
	r.DateTo = updated.DateTo
	r.Amenities = append([]models.ReservationAmenity(nil), updated.Amenities...)
	if processedBy != nil {
		now := time.Now().UTC()
		r.ProcessedAt = &now
		r.ProcessedBy = processedBy
	}
	r.RowVersion++
	return cloneReservation(r), nil
}

type fakeCategoryRepo struct {
	byID  map[uuid.UUID]*models.AccommodationCategory
	units *fakeUnitRepo
	res   *fakeReservationRepo
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *models.AccommodationCategory) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.AccommodationCategory, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]*models.AccommodationCategory, error) {
	var out []*models.AccommodationCategory
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *models.AccommodationCategory) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeCategoryRepo) FindAvailable(ctx context.Context, from, to time.Time, persons int) ([]*models.AccommodationCategory, error) {
	var out []*models.AccommodationCategory
	for _, c := range f.byID {
		if c.Capacity != persons {
			continue
		}
		units, _ := f.units.ListByCategoryID(ctx, c.ID)
		for _, u := range units {
			conflicts, _ := f.res.FindConfirmedOverlaps(ctx, u.ID, from, to)
			if len(conflicts) == 0 {
				out = append(out, c)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeUnitRepo struct {
	byID map[uuid.UUID]*models.AccommodationUnit
}

func (f *fakeUnitRepo) Create(_ context.Context, u *models.AccommodationUnit) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUnitRepo) CreateMany(ctx context.Context, list []models.AccommodationUnit) error {
	for i := range list {
		u := list[i]
		f.byID[u.ID] = &u
	}
	return nil
}

func (f *fakeUnitRepo) GetByID(_ context.Context, id uuid.UUID) (*models.AccommodationUnit, error) {
	return f.byID[id], nil
}

func (f *fakeUnitRepo) ListByCategoryID(_ context.Context, categoryID uuid.UUID) ([]*models.AccommodationUnit, error) {
	var out []*models.AccommodationUnit
	for _, u := range f.byID {
		if u.CategoryID == categoryID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (f *fakeUnitRepo) Update(_ context.Context, u *models.AccommodationUnit) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUnitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeAmenityRepo struct {
	byID map[uuid.UUID]*models.Amenity
}

func (f *fakeAmenityRepo) Create(_ context.Context, a *models.Amenity) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAmenityRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Amenity, error) {
	return f.byID[id], nil
}

func (f *fakeAmenityRepo) ListAll(_ context.Context) ([]*models.Amenity, error) {
	var out []*models.Amenity
	for _, a := range f.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeAmenityRepo) Update(_ context.Context, a *models.Amenity) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAmenityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type notifierCall struct {
	kind    string
	guestID uuid.UUID
	resID   uuid.UUID
}

type fakeNotifier struct {
	calls []notifierCall
}

func (f *fakeNotifier) ReservationConfirmed(_ context.Context, guest *models.User, r *models.Reservation) {
	f.calls = append(f.calls, notifierCall{kind: "confirmed", guestID: guest.ID, resID: r.ID})
}

func (f *fakeNotifier) ReservationRejected(_ context.Context, guest *models.User, r *models.Reservation, _ *string) {
	f.calls = append(f.calls, notifierCall{kind: "rejected", guestID: guest.ID, resID: r.ID})
}

func (f *fakeNotifier) ReservationUpdated(_ context.Context, guest *models.User, r *models.Reservation) {
	f.calls = append(f.calls, notifierCall{kind: "updated", guestID: guest.ID, resID: r.ID})
}

func (f *fakeNotifier) countOf(kind string) int {
	n := 0
	for _, c := range f.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) PublishReservationEvent(_ context.Context, eventType string, _ *models.Reservation) {
	f.events = append(f.events, eventType)
}

func (f *fakePublisher) Close() error { return nil }
