package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/quantumhotel/hotel-service/internal/models"
)

type AmenityRepository interface {
	Create(ctx context.Context, a *models.Amenity) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Amenity, error)
	ListAll(ctx context.Context) ([]*models.Amenity, error)
	Update(ctx context.Context, a *models.Amenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type amenityRepo struct {
	db DB
}

func NewAmenityRepository(db DB) AmenityRepository {
	return &amenityRepo{db: db}
}

func baseSelectAmenity() string {
	return `
		SELECT id, name, price_cents, description, created_at, updated_at
		FROM amenities`
}

func scanAmenity(row pgx.Row) (*models.Amenity, error) {
	var a models.Amenity
	err := row.Scan(&a.ID, &a.Name, &a.PriceCents, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *amenityRepo) Create(ctx context.Context, a *models.Amenity) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO amenities (id, name, price_cents, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4, NOW(), NOW())
	`, a.ID, a.Name, a.PriceCents, a.Description)
	return err
}

func (r *amenityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Amenity, error) {
	row := r.db.QueryRow(ctx, baseSelectAmenity()+" WHERE id=$1", id)
	return scanAmenity(row)
}

func (r *amenityRepo) ListAll(ctx context.Context) ([]*models.Amenity, error) {
	rows, err := r.db.Query(ctx, baseSelectAmenity()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Amenity
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *amenityRepo) Update(ctx context.Context, a *models.Amenity) error {
	_, err := r.db.Exec(ctx, `
		UPDATE amenities
		SET name=$1, price_cents=$2, description=$3, updated_at=NOW()
		WHERE id=$4
	`, a.Name, a.PriceCents, a.Description, a.ID)
	return err
}

func (r *amenityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM amenities WHERE id=$1`, id)
	return err
}
