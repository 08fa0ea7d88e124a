package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The cross-entity name references (building_name, owners_name,
// unit_name) are stored as plain text on purpose: the dashboard keeps
// them denormalized and adds no foreign keys.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tenants (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone_no TEXT NOT NULL,
		building_name TEXT NOT NULL,
		unit_type TEXT NOT NULL,
		rental_amount INTEGER NOT NULL,
		unit_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tenants_user_id ON tenants (user_id)`,
	`CREATE TABLE IF NOT EXISTS buildings (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		floors INTEGER NOT NULL,
		owners_name TEXT NOT NULL,
		owners_phone_no TEXT NOT NULL,
		location TEXT NOT NULL,
		building_units INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_buildings_user_id ON buildings (user_id)`,
	`CREATE TABLE IF NOT EXISTS building_owners (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		building_name TEXT NOT NULL,
		phone_no TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_building_owners_user_id ON building_owners (user_id)`,
	`CREATE TABLE IF NOT EXISTS houses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		house_name TEXT NOT NULL,
		rental_amount INTEGER NOT NULL,
		phone_no TEXT NOT NULL,
		unit_type TEXT NOT NULL,
		building_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_houses_user_id ON houses (user_id)`,
	`CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		unit_name TEXT NOT NULL,
		unit_type TEXT NOT NULL,
		rental_amount INTEGER NOT NULL,
		building_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_units_user_id ON units (user_id)`,
}

// Migrate applies the schema statements in order. Every statement is
// idempotent, so running it on boot is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
