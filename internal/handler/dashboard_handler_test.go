package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardHandlerFixture() (*testutil.MockProfileRepository, *testutil.MockSaleRepository, *DashboardHandler) {
	profileRepo := testutil.NewMockProfileRepository()
	saleRepo := testutil.NewMockSaleRepository(profileRepo)
	settingService := service.NewSettingService(testutil.NewMockSettingRepository())
	return profileRepo, saleRepo, NewDashboardHandler(service.NewDashboardService(saleRepo, settingService))
}

func TestGetStatsHandler_ExplicitRange(t *testing.T) {
	e := echo.New()
	profileRepo, saleRepo, handler := newDashboardHandlerFixture()

	profileRepo.AddProfile(&domain.Profile{ID: 1, Name: "Shop A", Color: "#ff0000", Active: true})
	profileRepo.AddProfile(&domain.Profile{ID: 2, Name: "Shop B", Color: "#00ff00", Active: true})

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := saleRepo.Upsert(day, 1, decimal.RequireFromString("125.00"), nil)
	require.NoError(t, err)
	_, err = saleRepo.Upsert(day, 2, decimal.RequireFromString("50.00"), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard?startDate=2024-03-01&endDate=2024-03-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response DashboardStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "175.00", response.TotalSales)
	require.Len(t, response.SalesByProfile, 2)
	assert.Equal(t, "Shop A", response.SalesByProfile[0].Name)
	assert.Equal(t, "125.00", response.SalesByProfile[0].Total)
	assert.Equal(t, "50.00", response.SalesByProfile[1].Total)
	assert.Equal(t, "15000.00", response.MonthlyTarget)
}

func TestGetStatsHandler_DefaultRangeIsCurrentMonth(t *testing.T) {
	e := echo.New()
	_, _, handler := newDashboardHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStatsHandler_InvertedRange(t *testing.T) {
	e := echo.New()
	_, _, handler := newDashboardHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard?startDate=2024-03-31&endDate=2024-03-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
