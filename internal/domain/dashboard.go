package domain

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate snapshot behind the dashboard view.
// CurrentMonthSales and LastMonthSales are always anchored to the real
// current calendar month, independent of the requested display range.
type DashboardStats struct {
	TotalSales        decimal.Decimal `json:"totalSales"`
	SalesByProfile    []*ProfileTotal `json:"salesByProfile"`
	MonthlyTarget     decimal.Decimal `json:"monthlyTarget"`
	CurrentMonthSales decimal.Decimal `json:"currentMonthSales"`
	LastMonthSales    decimal.Decimal `json:"lastMonthSales"`
	// TargetProgress is currentMonthSales / monthlyTarget * 100.
	TargetProgress decimal.Decimal `json:"targetProgress"`
}
