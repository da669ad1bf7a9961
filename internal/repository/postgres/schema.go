package postgres

import (
	"context"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            serial PRIMARY KEY,
		username      text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		created_at    timestamptz NOT NULL DEFAULT now(),
		updated_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id         serial PRIMARY KEY,
		name       text NOT NULL UNIQUE,
		color      text NOT NULL,
		active     boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_sales (
		id         serial PRIMARY KEY,
		sale_date  date NOT NULL,
		profile_id integer NOT NULL REFERENCES profiles(id),
		amount     numeric(12,2) NOT NULL DEFAULT 0,
		notes      text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		UNIQUE (sale_date, profile_id)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key        text PRIMARY KEY,
		value      text NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_sales_date ON daily_sales (sale_date)`,
}

// DefaultMonthlyTarget is seeded when no target has been configured yet.
const DefaultMonthlyTarget = "15000"

// Migrate creates the schema idempotently.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the default identity and monthly target when the tables
// are empty. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, username, passwordHash string) error {
	var userCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount == 0 {
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (username, password_hash) VALUES ($1, $2)`,
			username, passwordHash); err != nil {
			return err
		}
		log.Info().Str("username", username).Msg("Seeded default user")
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO NOTHING`,
		domain.SettingMonthlyTarget, DefaultMonthlyTarget)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		log.Info().Str("target", DefaultMonthlyTarget).Msg("Seeded default monthly target")
	}
	return nil
}
