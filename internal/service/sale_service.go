package service

import (
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SaleService handles ledger-related business logic
type SaleService struct {
	saleRepo domain.SaleRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo domain.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// DayItem is one validated element of a day's batch submission.
type DayItem struct {
	ProfileID int32
	Amount    decimal.Decimal
}

// Upsert records the amount for (date, profileID), overwriting any
// existing entry for the pair.
func (s *SaleService) Upsert(date time.Time, profileID int32, amount decimal.Decimal, notes *string) (*domain.Sale, error) {
	if profileID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	return s.saleRepo.Upsert(date, profileID, amount, notes)
}

// SaveDay upserts a whole day's amounts, one row per profile, stamping
// the same notes string on every row. Every element is validated before
// any write starts. The batch is deliberately NOT atomic: a failure
// partway through leaves earlier upserts committed.
func (s *SaleService) SaveDay(date time.Time, notes *string, items []DayItem) ([]*domain.Sale, error) {
	for _, item := range items {
		if item.ProfileID <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.Amount.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
	}

	saved := make([]*domain.Sale, 0, len(items))
	for _, item := range items {
		sale, err := s.saleRepo.Upsert(date, item.ProfileID, item.Amount, notes)
		if err != nil {
			return saved, err
		}
		saved = append(saved, sale)
	}
	return saved, nil
}

// Delete removes a sale by id. A miss is a no-op, not an error.
func (s *SaleService) Delete(id int32) error {
	return s.saleRepo.Delete(id)
}

// GetByDateRange retrieves sales within an inclusive date range.
func (s *SaleService) GetByDateRange(start, end time.Time, profileID *int32) ([]*domain.Sale, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidDate
	}
	return s.saleRepo.GetByDateRange(start, end, &domain.SaleFilters{ProfileID: profileID})
}

// GetByDate retrieves all sales recorded on a single date.
func (s *SaleService) GetByDate(date time.Time) ([]*domain.Sale, error) {
	return s.saleRepo.GetByDate(date)
}

// SumAmount totals sales over an optional inclusive range. An empty
// range yields exactly zero, never null.
func (s *SaleService) SumAmount(start, end *time.Time) (decimal.Decimal, error) {
	return s.saleRepo.SumAmount(start, end)
}
