package postgres

import (
	"context"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository implements domain.ProfileRepository using PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (name, color)
		VALUES ($1, $2)
		RETURNING id, name, color, active, created_at, updated_at`,
		profile.Name, profile.Color)

	created, err := scanProfile(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a profile by its ID
func (r *ProfileRepository) GetByID(id int32) (*domain.Profile, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, color, active, created_at, updated_at
		FROM profiles WHERE id = $1`, id)

	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// GetAll retrieves all profiles ordered by name, optionally active only
func (r *ProfileRepository) GetAll(activeOnly bool) ([]*domain.Profile, error) {
	ctx := context.Background()

	query := `SELECT id, name, color, active, created_at, updated_at FROM profiles ORDER BY name`
	if activeOnly {
		query = `SELECT id, name, color, active, created_at, updated_at FROM profiles WHERE active ORDER BY name`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// Update updates a profile's name and color
func (r *ProfileRepository) Update(id int32, name, color string) (*domain.Profile, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `
		UPDATE profiles SET name = $2, color = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, color, active, created_at, updated_at`,
		id, name, color)

	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return profile, nil
}

// Deactivate flips a profile to inactive. Historical sales are kept and
// re-deactivating is a no-op.
func (r *ProfileRepository) Deactivate(id int32) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET active = false, updated_at = now() WHERE id = $1`, id)
	return err
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&p.ID, &p.Name, &p.Color, &p.Active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
