package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// EnsureSchema creates the tables on first boot. All statements are
// idempotent so restarts are safe.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id           UUID PRIMARY KEY,
			email        TEXT NOT NULL UNIQUE,
			name         TEXT NOT NULL,
			phone_number TEXT,
			role         TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS accommodation_categories (
			id             UUID PRIMARY KEY,
			name           TEXT NOT NULL,
			units_number   INT NOT NULL DEFAULT 0,
			capacity       INT NOT NULL,
			twin_beds      BOOLEAN NOT NULL DEFAULT FALSE,
			price_cents    BIGINT NOT NULL,
			check_in_time  TEXT NOT NULL DEFAULT '15:00',
			check_out_time TEXT NOT NULL DEFAULT '11:00',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS accommodation_units (
			id                UUID PRIMARY KEY,
			category_id       UUID NOT NULL REFERENCES accommodation_categories(id),
			room_number       INT NOT NULL UNIQUE,
			floor             INT NOT NULL DEFAULT 0,
			is_cleaned        BOOLEAN NOT NULL DEFAULT TRUE,
			under_maintenance BOOLEAN NOT NULL DEFAULT FALSE,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS amenities (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			price_cents BIGINT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id           UUID PRIMARY KEY,
			guest_id     UUID NOT NULL REFERENCES users(id),
			category_id  UUID NOT NULL REFERENCES accommodation_categories(id),
			unit_id      UUID NOT NULL REFERENCES accommodation_units(id),
			date_from    TIMESTAMPTZ NOT NULL,
			date_to      TIMESTAMPTZ NOT NULL,
			status       TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			processed_at TIMESTAMPTZ,
			processed_by UUID,
			reason       TEXT,
			row_version  BIGINT NOT NULL DEFAULT 1,
			CHECK (date_to > date_from)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_unit_window
			ON reservations (unit_id, date_from, date_to)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_guest
			ON reservations (guest_id)`,
		`CREATE TABLE IF NOT EXISTS reservation_amenities (
			id             UUID PRIMARY KEY,
			reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
			amenity_id     UUID NOT NULL REFERENCES amenities(id),
			quantity       INT NOT NULL CHECK (quantity > 0),
			UNIQUE (reservation_id, amenity_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
