package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/* ───────────── public interface ───────────── */

type ReservationRepository interface {
	// GetByID loads the reservation together with its amenity line items.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListByGuestID(ctx context.Context, guestID uuid.UUID) ([]*models.Reservation, error)
	ListAll(ctx context.Context) ([]*models.Reservation, error)
	ListPendingStartedBefore(ctx context.Context, cutoff time.Time) ([]*models.Reservation, error)

	// FindConfirmedOverlaps returns CONFIRMED reservations on the unit whose
	// [date_from, date_to) overlaps [from, to). Used by the allocation and
	// confirm paths.
	FindConfirmedOverlaps(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*models.Reservation, error)

	// FindOverlapsExcludingSelf additionally considers PENDING reservations,
	// minus the excluded one. Used by the pending-edit paths so a reservation
	// is checked against its siblings, not itself.
	FindOverlapsExcludingSelf(ctx context.Context, unitID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]*models.Reservation, error)

	// CreateAtomic locks the allocated unit, re-checks CONFIRMED overlaps and
	// inserts the reservation with its line items in one transaction.
	// Returns utils.ErrNoAvailability when the unit was taken in between.
	CreateAtomic(ctx context.Context, r *models.Reservation) (*models.Reservation, error)

	// ConfirmAtomic performs PENDING→CONFIRMED under a unit row lock.
	ConfirmAtomic(ctx context.Context, id uuid.UUID, staffID uuid.UUID, expectedVersion int64) (*models.Reservation, error)

	// RejectAtomic performs PENDING→REJECTED. No overlap gate: rejecting
	// frees nothing that was held.
	RejectAtomic(ctx context.Context, id uuid.UUID, staffID uuid.UUID, reason *string, expectedVersion int64) (*models.Reservation, error)

	// UpdatePendingAtomic persists new dates and the reconciled line-item set
	// of a PENDING reservation, after re-validating overlap against
	// CONFIRMED+PENDING siblings under the unit row lock. When processedBy is
	// non-nil (staff edit) the processed stamp is written without changing
	// status.
	UpdatePendingAtomic(ctx context.Context, r *models.Reservation, expectedVersion int64, processedBy *uuid.UUID) (*models.Reservation, error)
}

/* ───────────── implementation ───────────── */

type reservationRepo struct {
	db DB
}

func NewReservationRepository(db DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func baseSelectReservation() string {
	return `
		SELECT id, guest_id, category_id, unit_id, date_from, date_to, status,
		       created_at, processed_at, processed_by, reason, row_version
		FROM reservations`
}

// Overlap predicate in SQL form; must stay in sync with interval.Overlaps.
const overlapExpr = `NOT (date_to <= $2 OR date_from >= $3)`

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var r models.Reservation
	err := row.Scan(
		&r.ID, &r.GuestID, &r.CategoryID, &r.UnitID, &r.DateFrom, &r.DateTo,
		&r.Status, &r.CreatedAt, &r.ProcessedAt, &r.ProcessedBy, &r.Reason,
		&r.RowVersion,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanReservations(rows pgx.Rows) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

/* ---------- line items ---------- */

func loadLineItems(ctx context.Context, q DB, reservationID uuid.UUID) ([]models.ReservationAmenity, error) {
	rows, err := q.Query(ctx, `
		SELECT id, reservation_id, amenity_id, quantity
		FROM reservation_amenities
		WHERE reservation_id=$1
		ORDER BY id
	`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ReservationAmenity
	for rows.Next() {
		var it models.ReservationAmenity
		if err := rows.Scan(&it.ID, &it.ReservationID, &it.AmenityID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func insertLineItems(ctx context.Context, q DB, r *models.Reservation) error {
	for i := range r.Amenities {
		it := &r.Amenities[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.ReservationID = r.ID
		_, err := q.Exec(ctx, `
			INSERT INTO reservation_amenities (id, reservation_id, amenity_id, quantity)
			VALUES ($1,$2,$3,$4)
		`, it.ID, it.ReservationID, it.AmenityID, it.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}

/* ---------- reads ---------- */

func (r *reservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	row := r.db.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", id)
	res, err := scanReservation(row)
	if err != nil || res == nil {
		return res, err
	}
	items, err := loadLineItems(ctx, r.db, res.ID)
	if err != nil {
		return nil, err
	}
	res.Amenities = items
	return res, nil
}

// List reads skip line items; details come through GetByID.
func (r *reservationRepo) ListByGuestID(ctx context.Context, guestID uuid.UUID) ([]*models.Reservation, error) {
	rows, err := r.db.Query(ctx, baseSelectReservation()+" WHERE guest_id=$1 ORDER BY created_at DESC", guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepo) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	rows, err := r.db.Query(ctx, baseSelectReservation()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepo) ListPendingStartedBefore(ctx context.Context, cutoff time.Time) ([]*models.Reservation, error) {
	rows, err := r.db.Query(ctx, baseSelectReservation()+" WHERE status='PENDING' AND date_from < $1", cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

/* ---------- overlap queries ---------- */

func (r *reservationRepo) FindConfirmedOverlaps(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*models.Reservation, error) {
	return findConfirmedOverlaps(ctx, r.db, unitID, from, to)
}

func findConfirmedOverlaps(ctx context.Context, q DB, unitID uuid.UUID, from, to time.Time) ([]*models.Reservation, error) {
	rows, err := q.Query(ctx, baseSelectReservation()+`
		WHERE unit_id=$1 AND status='CONFIRMED' AND `+overlapExpr,
		unitID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepo) FindOverlapsExcludingSelf(ctx context.Context, unitID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]*models.Reservation, error) {
	return findOverlapsExcludingSelf(ctx, r.db, unitID, from, to, excludeID)
}

func findOverlapsExcludingSelf(ctx context.Context, q DB, unitID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]*models.Reservation, error) {
	rows, err := q.Query(ctx, baseSelectReservation()+`
		WHERE unit_id=$1 AND status IN ('CONFIRMED','PENDING')
		  AND id <> $4 AND `+overlapExpr,
		unitID, from, to, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

/* ---------- atomic transitions ---------- */

// lockUnit takes the per-unit row lock that serializes every overlap
// check + write pair touching the same unit.
func lockUnit(ctx context.Context, tx pgx.Tx, unitID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM accommodation_units WHERE id=$1 FOR UPDATE`, unitID).Scan(&id)
	if err == pgx.ErrNoRows {
		return utils.ErrNotFound
	}
	return err
}

func (r *reservationRepo) CreateAtomic(ctx context.Context, res *models.Reservation) (out *models.Reservation, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if err = lockUnit(ctx, tx, res.UnitID); err != nil {
		return nil, err
	}

	conflicts, err := findConfirmedOverlaps(ctx, tx, res.UnitID, res.DateFrom, res.DateTo)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		err = utils.ErrNoAvailability
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO reservations (
			id, guest_id, category_id, unit_id, date_from, date_to, status,
			created_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,'PENDING', NOW(), 1)
	`, res.ID, res.GuestID, res.CategoryID, res.UnitID, res.DateFrom, res.DateTo)
	if err != nil {
		return nil, err
	}

	if err = insertLineItems(ctx, tx, res); err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", res.ID)
	out, err = scanReservation(row)
	if err != nil {
		return nil, err
	}
	out.Amenities = res.Amenities
	return out, nil
}

func (r *reservationRepo) ConfirmAtomic(ctx context.Context, id uuid.UUID, staffID uuid.UUID, expectedVersion int64) (out *models.Reservation, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1 FOR UPDATE", id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, err
	}
	if res == nil {
		err = utils.ErrNotFound
		return nil, err
	}
	if res.RowVersion != expectedVersion {
		err = utils.ErrRowVersionConflict
		return res, err
	}
	if res.Status != models.ReservationStatusPending {
		err = utils.ErrInvalidState
		return res, err
	}

	if err = lockUnit(ctx, tx, res.UnitID); err != nil {
		return nil, err
	}

	// Confirm gates on CONFIRMED overlaps only; the reservation itself is
	// still PENDING and cannot match.
	conflicts, err := findConfirmedOverlaps(ctx, tx, res.UnitID, res.DateFrom, res.DateTo)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		err = utils.ErrConflict
		return res, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE reservations
		SET status='CONFIRMED', processed_at=NOW(), processed_by=$1,
		    row_version=row_version+1
		WHERE id=$2
	`, staffID, id)
	if err != nil {
		return nil, err
	}

	newRow := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", id)
	out, err = scanReservation(newRow)
	return out, err
}

func (r *reservationRepo) RejectAtomic(ctx context.Context, id uuid.UUID, staffID uuid.UUID, reason *string, expectedVersion int64) (out *models.Reservation, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1 FOR UPDATE", id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, err
	}
	if res == nil {
		err = utils.ErrNotFound
		return nil, err
	}
	if res.RowVersion != expectedVersion {
		err = utils.ErrRowVersionConflict
		return res, err
	}
	if res.Status != models.ReservationStatusPending {
		err = utils.ErrInvalidState
		return res, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE reservations
		SET status='REJECTED', processed_at=NOW(), processed_by=$1, reason=$2,
		    row_version=row_version+1
		WHERE id=$3
	`, staffID, reason, id)
	if err != nil {
		return nil, err
	}

	newRow := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", id)
	out, err = scanReservation(newRow)
	return out, err
}

func (r *reservationRepo) UpdatePendingAtomic(ctx context.Context, res *models.Reservation, expectedVersion int64, processedBy *uuid.UUID) (out *models.Reservation, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1 FOR UPDATE", res.ID)
	current, err := scanReservation(row)
	if err != nil {
		return nil, err
	}
	if current == nil {
		err = utils.ErrNotFound
		return nil, err
	}
	if current.RowVersion != expectedVersion {
		err = utils.ErrRowVersionConflict
		return current, err
	}
	if current.Status != models.ReservationStatusPending {
		err = utils.ErrInvalidState
		return current, err
	}

	if err = lockUnit(ctx, tx, current.UnitID); err != nil {
		return nil, err
	}

	conflicts, err := findOverlapsExcludingSelf(ctx, tx, current.UnitID, res.DateFrom, res.DateTo, res.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		err = utils.ErrConflict
		return current, err
	}

	if processedBy != nil {
		_, err = tx.Exec(ctx, `
			UPDATE reservations
			SET date_from=$1, date_to=$2, processed_at=NOW(), processed_by=$3,
			    row_version=row_version+1
			WHERE id=$4
		`, res.DateFrom, res.DateTo, processedBy, res.ID)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE reservations
			SET date_from=$1, date_to=$2, row_version=row_version+1
			WHERE id=$3
		`, res.DateFrom, res.DateTo, res.ID)
	}
	if err != nil {
		return nil, err
	}

	// Line items are owned by the reservation; persist the reconciled set
	// wholesale.
	_, err = tx.Exec(ctx, `DELETE FROM reservation_amenities WHERE reservation_id=$1`, res.ID)
	if err != nil {
		return nil, err
	}
	if err = insertLineItems(ctx, tx, res); err != nil {
		return nil, err
	}

	newRow := tx.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", res.ID)
	out, err = scanReservation(newRow)
	if err != nil {
		return nil, err
	}
	out.Amenities = res.Amenities
	return out, nil
}
