package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newSaleHandlerFixture() (*testutil.MockProfileRepository, *SaleHandler) {
	profileRepo := testutil.NewMockProfileRepository()
	saleRepo := testutil.NewMockSaleRepository(profileRepo)
	return profileRepo, NewSaleHandler(service.NewSaleService(saleRepo))
}

func TestSaveDayHandler_Success(t *testing.T) {
	e := echo.New()
	profileRepo, handler := newSaleHandlerFixture()
	profileRepo.AddProfile(&domain.Profile{ID: 1, Name: "Shop A", Color: "#ff0000", Active: true})
	profileRepo.AddProfile(&domain.Profile{ID: 2, Name: "Shop B", Color: "#00ff00", Active: true})

	body := `{"date":"2024-03-15","notes":"busy","sales":[{"profileId":1,"amount":75},{"profileId":2,"amount":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SaveDay(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response []SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 saved entries, got %d", len(response))
	}
	if response[0].Amount != "75.00" {
		t.Errorf("Expected amount '75.00', got %s", response[0].Amount)
	}
	if response[0].Notes == nil || *response[0].Notes != "busy" {
		t.Errorf("Expected notes 'busy', got %v", response[0].Notes)
	}
}

func TestSaveDayHandler_InvalidDate(t *testing.T) {
	e := echo.New()
	_, handler := newSaleHandlerFixture()

	body := `{"date":"15/03/2024","sales":[{"profileId":1,"amount":75}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SaveDay(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSaveDayHandler_NegativeAmount(t *testing.T) {
	e := echo.New()
	profileRepo, handler := newSaleHandlerFixture()
	profileRepo.AddProfile(&domain.Profile{ID: 1, Name: "Shop A", Color: "#ff0000", Active: true})

	body := `{"date":"2024-03-15","sales":[{"profileId":1,"amount":-5}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SaveDay(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSaveDayHandler_EmptyBatch(t *testing.T) {
	e := echo.New()
	_, handler := newSaleHandlerFixture()

	body := `{"date":"2024-03-15","sales":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SaveDay(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestListSalesHandler_MissingRange(t *testing.T) {
	e := echo.New()
	_, handler := newSaleHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteSaleHandler_MissIsNoContent(t *testing.T) {
	e := echo.New()
	_, handler := newSaleHandlerFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/sales/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
}
