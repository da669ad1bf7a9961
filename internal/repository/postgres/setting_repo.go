package postgres

import (
	"context"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingRepository implements domain.SettingRepository using PostgreSQL
type SettingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

// Get retrieves a setting by key
func (r *SettingRepository) Get(key string) (*domain.Setting, error) {
	ctx := context.Background()

	var s domain.Setting
	var updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		SELECT key, value, updated_at FROM settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// Set inserts or replaces a setting value. Last write wins; no history
// is kept.
func (r *SettingRepository) Set(key, value string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return err
}
