package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func TestExportCSVHandler(t *testing.T) {
	e := echo.New()
	profileRepo := testutil.NewMockProfileRepository()
	saleRepo := testutil.NewMockSaleRepository(profileRepo)
	handler := NewExportHandler(service.NewExportService(service.NewSaleService(saleRepo)))

	profileRepo.AddProfile(&domain.Profile{ID: 1, Name: "Shop A", Color: "#ff0000", Active: true})
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if _, err := saleRepo.Upsert(date, 1, decimal.NewFromInt(75), nil); err != nil {
		t.Fatalf("Failed to seed sale: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv?startDate=2024-03-01&endDate=2024-03-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ExportCSV(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	if disposition != `attachment; filename="sales_2024-03-01_2024-03-31.csv"` {
		t.Errorf("Unexpected content disposition: %s", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("Expected UTF-8 BOM prefix")
	}
}

func TestExportCSVHandler_MissingRange(t *testing.T) {
	e := echo.New()
	profileRepo := testutil.NewMockProfileRepository()
	saleRepo := testutil.NewMockSaleRepository(profileRepo)
	handler := NewExportHandler(service.NewExportService(service.NewSaleService(saleRepo)))

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ExportCSV(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
