package postgres

import (
	"context"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository implements domain.SnapshotRepository using PostgreSQL
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Snapshot reads all tables inside one repeatable-read, read-only
// transaction: a consistent point-in-time view that does not block
// concurrent writers.
func (r *SnapshotRepository) Snapshot() (*domain.BackupSnapshot, error) {
	ctx := context.Background()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	snapshot := &domain.BackupSnapshot{CreatedAt: time.Now().UTC()}

	profileRows, err := tx.Query(ctx, `
		SELECT id, name, color, active, created_at, updated_at FROM profiles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	for profileRows.Next() {
		profile, err := scanProfile(profileRows)
		if err != nil {
			profileRows.Close()
			return nil, err
		}
		snapshot.Profiles = append(snapshot.Profiles, profile)
	}
	profileRows.Close()
	if err := profileRows.Err(); err != nil {
		return nil, err
	}

	saleRows, err := tx.Query(ctx, `
		SELECT ds.id, ds.sale_date, ds.profile_id, p.name, p.color, ds.amount, ds.notes, ds.created_at, ds.updated_at
		FROM daily_sales ds
		JOIN profiles p ON p.id = ds.profile_id
		ORDER BY ds.sale_date, p.name`)
	if err != nil {
		return nil, err
	}
	sales, err := scanSalesWithProfile(saleRows)
	saleRows.Close()
	if err != nil {
		return nil, err
	}
	snapshot.Sales = sales

	settingRows, err := tx.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	for settingRows.Next() {
		var s domain.Setting
		if err := settingRows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			settingRows.Close()
			return nil, err
		}
		snapshot.Settings = append(snapshot.Settings, &s)
	}
	settingRows.Close()
	if err := settingRows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return snapshot, nil
}
