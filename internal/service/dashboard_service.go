package service

import (
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/util"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DashboardService derives the dashboard rollups. It holds no state of
// its own; every call recomputes from the stores.
type DashboardService struct {
	saleRepo       domain.SaleRepository
	settingService *SettingService
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(saleRepo domain.SaleRepository, settingService *SettingService) *DashboardService {
	return &DashboardService{
		saleRepo:       saleRepo,
		settingService: settingService,
		now:            time.Now,
	}
}

// SalesByProfile returns per-profile totals over an optional range,
// active profiles only, ordered by total descending then name ascending.
// Profiles without sales in range appear with a zero total.
func (s *DashboardService) SalesByProfile(start, end *time.Time) ([]*domain.ProfileTotal, error) {
	return s.saleRepo.SumByProfile(start, end)
}

// GetStats assembles the dashboard snapshot for a display range. The
// current/last month figures are anchored to the real current calendar
// month, not to the requested range.
func (s *DashboardService) GetStats(start, end time.Time) (*domain.DashboardStats, error) {
	totalSales, err := s.saleRepo.SumAmount(&start, &end)
	if err != nil {
		return nil, err
	}

	salesByProfile, err := s.saleRepo.SumByProfile(&start, &end)
	if err != nil {
		return nil, err
	}

	target, err := s.settingService.GetMonthlyTarget()
	if err != nil {
		return nil, err
	}

	now := s.now()
	curStart, curEnd := util.MonthBounds(now.Year(), int(now.Month()))
	currentMonthSales, err := s.saleRepo.SumAmount(&curStart, &curEnd)
	if err != nil {
		return nil, err
	}

	lastYear, lastMonth := util.PreviousMonth(now.Year(), int(now.Month()))
	lastStart, lastEnd := util.MonthBounds(lastYear, lastMonth)
	lastMonthSales, err := s.saleRepo.SumAmount(&lastStart, &lastEnd)
	if err != nil {
		return nil, err
	}

	// A zero target would make the progress division meaningless; the
	// settings service rejects non-positive targets, so a zero here
	// means the stored value was tampered with.
	if !target.IsPositive() {
		return nil, domain.ErrInvalidState
	}
	progress := currentMonthSales.Div(target).Mul(oneHundred)

	return &domain.DashboardStats{
		TotalSales:        totalSales,
		SalesByProfile:    salesByProfile,
		MonthlyTarget:     target,
		CurrentMonthSales: currentMonthSales,
		LastMonthSales:    lastMonthSales,
		TargetProgress:    progress,
	}, nil
}
