package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SaleRepository implements domain.SaleRepository using PostgreSQL
type SaleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// Upsert inserts or overwrites the sale for (date, profileID) in a single
// statement, so two concurrent first writes to the same pair cannot race
// into duplicate rows.
func (r *SaleRepository) Upsert(date time.Time, profileID int32, amount decimal.Decimal, notes *string) (*domain.Sale, error) {
	ctx := context.Background()

	num, err := decimalToPgNumeric(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var pgNotes pgtype.Text
	if notes != nil {
		pgNotes.String = *notes
		pgNotes.Valid = true
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO daily_sales (sale_date, profile_id, amount, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sale_date, profile_id)
		DO UPDATE SET amount = EXCLUDED.amount, notes = EXCLUDED.notes, updated_at = now()
		RETURNING id, sale_date, profile_id, amount, notes, created_at, updated_at`,
		pgtype.Date{Time: date, Valid: true}, profileID, num, pgNotes)

	sale, err := scanSale(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale by id. Deleting an id that does not exist is a
// no-op, matching the ledger's create-or-update philosophy.
func (r *SaleRepository) Delete(id int32) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM daily_sales WHERE id = $1`, id)
	return err
}

// GetByDateRange retrieves sales within an inclusive date range, optionally
// filtered to one profile, ordered by date then profile name.
func (r *SaleRepository) GetByDateRange(start, end time.Time, filters *domain.SaleFilters) ([]*domain.Sale, error) {
	ctx := context.Background()

	var profileID *int32
	if filters != nil {
		profileID = filters.ProfileID
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ds.id, ds.sale_date, ds.profile_id, p.name, p.color, ds.amount, ds.notes, ds.created_at, ds.updated_at
		FROM daily_sales ds
		JOIN profiles p ON p.id = ds.profile_id
		WHERE ds.sale_date BETWEEN $1 AND $2
		  AND ($3::int4 IS NULL OR ds.profile_id = $3)
		ORDER BY ds.sale_date, p.name`,
		pgtype.Date{Time: start, Valid: true}, pgtype.Date{Time: end, Valid: true}, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSalesWithProfile(rows)
}

// GetByDate retrieves all profiles' sales for a single date, ordered by
// profile name.
func (r *SaleRepository) GetByDate(date time.Time) ([]*domain.Sale, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT ds.id, ds.sale_date, ds.profile_id, p.name, p.color, ds.amount, ds.notes, ds.created_at, ds.updated_at
		FROM daily_sales ds
		JOIN profiles p ON p.id = ds.profile_id
		WHERE ds.sale_date = $1
		ORDER BY p.name`,
		pgtype.Date{Time: date, Valid: true})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSalesWithProfile(rows)
}

// SumAmount totals all sales within the optional inclusive range. Rows
// belonging to inactive profiles still count.
func (r *SaleRepository) SumAmount(start, end *time.Time) (decimal.Decimal, error) {
	ctx := context.Background()

	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM daily_sales
		WHERE ($1::date IS NULL OR sale_date >= $1)
		  AND ($2::date IS NULL OR sale_date <= $2)`,
		datePtr(start), datePtr(end)).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// SumByProfile totals sales per active profile over the optional range.
// The range condition lives in the join so profiles without sales still
// appear with a zero total.
func (r *SaleRepository) SumByProfile(start, end *time.Time) ([]*domain.ProfileTotal, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.color, COALESCE(SUM(ds.amount), 0) AS total
		FROM profiles p
		LEFT JOIN daily_sales ds ON ds.profile_id = p.id
		  AND ($1::date IS NULL OR ds.sale_date >= $1)
		  AND ($2::date IS NULL OR ds.sale_date <= $2)
		WHERE p.active
		GROUP BY p.id, p.name, p.color
		ORDER BY total DESC, p.name ASC`,
		datePtr(start), datePtr(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.ProfileTotal
	for rows.Next() {
		var t domain.ProfileTotal
		var total pgtype.Numeric
		if err := rows.Scan(&t.ProfileID, &t.Name, &t.Color, &total); err != nil {
			return nil, err
		}
		t.Total = pgNumericToDecimal(total)
		totals = append(totals, &t)
	}
	return totals, rows.Err()
}

// Helper functions

func datePtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	var saleDate pgtype.Date
	var amount pgtype.Numeric
	var notes pgtype.Text
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&s.ID, &saleDate, &s.ProfileID, &amount, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	s.SaleDate = saleDate.Time
	s.Amount = pgNumericToDecimal(amount)
	if notes.Valid {
		s.Notes = &notes.String
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

func scanSalesWithProfile(rows pgx.Rows) ([]*domain.Sale, error) {
	var sales []*domain.Sale
	for rows.Next() {
		var s domain.Sale
		var saleDate pgtype.Date
		var amount pgtype.Numeric
		var notes pgtype.Text
		var createdAt, updatedAt pgtype.Timestamptz

		if err := rows.Scan(&s.ID, &saleDate, &s.ProfileID, &s.ProfileName, &s.ProfileColor, &amount, &notes, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		s.SaleDate = saleDate.Time
		s.Amount = pgNumericToDecimal(amount)
		if notes.Valid {
			s.Notes = &notes.String
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}
