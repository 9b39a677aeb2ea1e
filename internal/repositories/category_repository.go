package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/quantumhotel/hotel-service/internal/models"
)

/* ───────────── public interface ───────────── */

type CategoryRepository interface {
	Create(ctx context.Context, c *models.AccommodationCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccommodationCategory, error)
	ListAll(ctx context.Context) ([]*models.AccommodationCategory, error)
	Update(ctx context.Context, c *models.AccommodationCategory) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAvailable returns categories with the exact requested capacity that
	// have at least one unit free of CONFIRMED reservations in [from, to).
	FindAvailable(ctx context.Context, from, to time.Time, persons int) ([]*models.AccommodationCategory, error)
}

/* ───────────── implementation ───────────── */

type categoryRepo struct {
	db DB
}

func NewCategoryRepository(db DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func baseSelectCategory() string {
	return `
		SELECT id, name, units_number, capacity, twin_beds, price_cents,
		       check_in_time, check_out_time, created_at, updated_at
		FROM accommodation_categories`
}

func scanCategory(row pgx.Row) (*models.AccommodationCategory, error) {
	var c models.AccommodationCategory
	err := row.Scan(
		&c.ID, &c.Name, &c.UnitsNumber, &c.Capacity, &c.TwinBeds, &c.PriceCents,
		&c.CheckInTime, &c.CheckOutTime, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) scanCategories(rows pgx.Rows) ([]*models.AccommodationCategory, error) {
	var out []*models.AccommodationCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepo) Create(ctx context.Context, c *models.AccommodationCategory) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accommodation_categories (
			id, name, units_number, capacity, twin_beds, price_cents,
			check_in_time, check_out_time, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW())
	`, c.ID, c.Name, c.UnitsNumber, c.Capacity, c.TwinBeds, c.PriceCents,
		c.CheckInTime, c.CheckOutTime)
	return err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AccommodationCategory, error) {
	row := r.db.QueryRow(ctx, baseSelectCategory()+" WHERE id=$1", id)
	return scanCategory(row)
}

func (r *categoryRepo) ListAll(ctx context.Context) ([]*models.AccommodationCategory, error) {
	rows, err := r.db.Query(ctx, baseSelectCategory()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanCategories(rows)
}

func (r *categoryRepo) Update(ctx context.Context, c *models.AccommodationCategory) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accommodation_categories
		SET name=$1, units_number=$2, capacity=$3, twin_beds=$4, price_cents=$5,
		    check_in_time=$6, check_out_time=$7, updated_at=NOW()
		WHERE id=$8
	`, c.Name, c.UnitsNumber, c.Capacity, c.TwinBeds, c.PriceCents,
		c.CheckInTime, c.CheckOutTime, c.ID)
	return err
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM accommodation_categories WHERE id=$1`, id)
	return err
}

// The NOT EXISTS clause mirrors the overlap predicate in
// internal/interval: NOT (date_to <= from OR date_from >= to).
func (r *categoryRepo) FindAvailable(ctx context.Context, from, to time.Time, persons int) ([]*models.AccommodationCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT c.id, c.name, c.units_number, c.capacity, c.twin_beds,
		       c.price_cents, c.check_in_time, c.check_out_time,
		       c.created_at, c.updated_at
		FROM accommodation_categories c
		JOIN accommodation_units u ON u.category_id = c.id
		WHERE c.capacity = $3
		  AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.unit_id = u.id
			  AND r.status = 'CONFIRMED'
			  AND NOT (r.date_to <= $1 OR r.date_from >= $2)
		  )
		ORDER BY c.name
	`, from, to, persons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanCategories(rows)
}
