package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one recorded revenue amount for a profile on a calendar date.
// The (SaleDate, ProfileID) pair is unique; writing the same pair twice
// updates the existing row.
type Sale struct {
	ID           int32           `json:"id"`
	SaleDate     time.Time       `json:"date"`
	ProfileID    int32           `json:"profileId"`
	ProfileName  string          `json:"profileName"`
	ProfileColor string          `json:"profileColor"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SaleFilters narrows range queries to a single profile.
type SaleFilters struct {
	ProfileID *int32
}

// ProfileTotal is one row of the per-profile ranking. Profiles without
// sales in range appear with a zero total.
type ProfileTotal struct {
	ProfileID int32           `json:"profileId"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Total     decimal.Decimal `json:"total"`
}

type SaleRepository interface {
	// Upsert inserts or overwrites the row for (date, profileID) as a
	// single atomic statement.
	Upsert(date time.Time, profileID int32, amount decimal.Decimal, notes *string) (*Sale, error)
	// Delete removes a sale by id. Deleting a nonexistent id is a no-op.
	Delete(id int32) error
	GetByDateRange(start, end time.Time, filters *SaleFilters) ([]*Sale, error)
	GetByDate(date time.Time) ([]*Sale, error)
	// SumAmount totals all sales, optionally bounded by an inclusive
	// date range. Rows of inactive profiles are included.
	SumAmount(start, end *time.Time) (decimal.Decimal, error)
	// SumByProfile totals sales per active profile over an optional
	// range, ordered by total descending then name ascending.
	SumByProfile(start, end *time.Time) ([]*ProfileTotal, error)
}
