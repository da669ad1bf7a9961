package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func TestGetTargetHandler_Default(t *testing.T) {
	e := echo.New()
	handler := NewSettingHandler(service.NewSettingService(testutil.NewMockSettingRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/settings/target", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTarget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response TargetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Target != "15000.00" {
		t.Errorf("Expected default target '15000.00', got %s", response.Target)
	}
}

func TestSetTargetHandler_Roundtrip(t *testing.T) {
	e := echo.New()
	settingService := service.NewSettingService(testutil.NewMockSettingRepository())
	handler := NewSettingHandler(settingService)

	req := httptest.NewRequest(http.MethodPost, "/api/settings/target", strings.NewReader(`{"target":20000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetTarget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	target, err := settingService.GetMonthlyTarget()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if target.String() != "20000" {
		t.Errorf("Expected stored target 20000, got %s", target.String())
	}
}

func TestSetTargetHandler_RejectsNonPositive(t *testing.T) {
	e := echo.New()
	handler := NewSettingHandler(service.NewSettingService(testutil.NewMockSettingRepository()))

	req := httptest.NewRequest(http.MethodPost, "/api/settings/target", strings.NewReader(`{"target":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetTarget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
