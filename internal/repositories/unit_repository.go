package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/quantumhotel/hotel-service/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.AccommodationUnit) error
	CreateMany(ctx context.Context, list []models.AccommodationUnit) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.AccommodationUnit, error)

	// ListByCategoryID returns the category's units in ascending room-number
	// order. Allocation walks this list, so the order must be stable.
	ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*models.AccommodationUnit, error)

	Update(ctx context.Context, u *models.AccommodationUnit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func baseSelectUnit() string {
	return `
		SELECT id, category_id, room_number, floor, is_cleaned,
		       under_maintenance, created_at, updated_at
		FROM accommodation_units`
}

func scanUnit(row pgx.Row) (*models.AccommodationUnit, error) {
	var u models.AccommodationUnit
	err := row.Scan(
		&u.ID, &u.CategoryID, &u.RoomNumber, &u.Floor, &u.IsCleaned,
		&u.UnderMaintenance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unitRepo) scanUnits(rows pgx.Rows) ([]*models.AccommodationUnit, error) {
	var out []*models.AccommodationUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

/* ---------- create ---------- */

func (r *unitRepo) Create(ctx context.Context, u *models.AccommodationUnit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accommodation_units (
			id, category_id, room_number, floor, is_cleaned, under_maintenance,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW())
	`, u.ID, u.CategoryID, u.RoomNumber, u.Floor, u.IsCleaned, u.UnderMaintenance)
	return err
}

func (r *unitRepo) CreateMany(ctx context.Context, list []models.AccommodationUnit) error {
	for i := range list {
		if err := r.Create(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

/* ---------- reads ---------- */

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AccommodationUnit, error) {
	row := r.db.QueryRow(ctx, baseSelectUnit()+" WHERE id=$1", id)
	return scanUnit(row)
}

func (r *unitRepo) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*models.AccommodationUnit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE category_id=$1 ORDER BY room_number", categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanUnits(rows)
}

/* ---------- update / delete ---------- */

func (r *unitRepo) Update(ctx context.Context, u *models.AccommodationUnit) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accommodation_units
		SET category_id=$1, room_number=$2, floor=$3, is_cleaned=$4,
		    under_maintenance=$5, updated_at=NOW()
		WHERE id=$6
	`, u.CategoryID, u.RoomNumber, u.Floor, u.IsCleaned, u.UnderMaintenance, u.ID)
	return err
}

func (r *unitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM accommodation_units WHERE id=$1`, id)
	return err
}
