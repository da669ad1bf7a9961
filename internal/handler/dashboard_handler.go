package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard statistics HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ProfileTotalResponse is one ranking entry
type ProfileTotalResponse struct {
	ProfileID int32  `json:"profileId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Total     string `json:"total"`
}

// DashboardStatsResponse is the assembled dashboard payload
type DashboardStatsResponse struct {
	TotalSales        string                 `json:"totalSales"`
	SalesByProfile    []ProfileTotalResponse `json:"salesByProfile"`
	MonthlyTarget     string                 `json:"monthlyTarget"`
	CurrentMonthSales string                 `json:"currentMonthSales"`
	LastMonthSales    string                 `json:"lastMonthSales"`
	TargetProgress    string                 `json:"targetProgress"`
}

// GetStats handles GET /api/stats/dashboard?startDate&endDate. When no
// range is given the current calendar month is used.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	var start, end time.Time
	rawStart, rawEnd := c.QueryParam("startDate"), c.QueryParam("endDate")
	if rawStart == "" && rawEnd == "" {
		now := time.Now()
		start, end = util.MonthBounds(now.Year(), int(now.Month()))
	} else {
		var err error
		start, err = util.ParseDate(rawStart)
		if err != nil {
			return NewValidationError(c, "Invalid startDate (expected YYYY-MM-DD)", nil)
		}
		end, err = util.ParseDate(rawEnd)
		if err != nil {
			return NewValidationError(c, "Invalid endDate (expected YYYY-MM-DD)", nil)
		}
		if end.Before(start) {
			return NewValidationError(c, "endDate must not be before startDate", nil)
		}
	}

	stats, err := h.dashboardService.GetStats(start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return NewInvalidStateError(c, "Stored monthly target is invalid")
		}
		log.Error().Err(err).Msg("Failed to compute dashboard stats")
		return NewInternalError(c, "Failed to compute dashboard statistics")
	}

	byProfile := make([]ProfileTotalResponse, 0, len(stats.SalesByProfile))
	for _, pt := range stats.SalesByProfile {
		byProfile = append(byProfile, ProfileTotalResponse{
			ProfileID: pt.ProfileID,
			Name:      pt.Name,
			Color:     pt.Color,
			Total:     pt.Total.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, DashboardStatsResponse{
		TotalSales:        stats.TotalSales.StringFixed(2),
		SalesByProfile:    byProfile,
		MonthlyTarget:     stats.MonthlyTarget.StringFixed(2),
		CurrentMonthSales: stats.CurrentMonthSales.StringFixed(2),
		LastMonthSales:    stats.LastMonthSales.StringFixed(2),
		TargetProgress:    stats.TargetProgress.StringFixed(2),
	})
}
