package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/middleware"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// setupAuthContext injects an authenticated identity the way the auth
// middleware does.
func setupAuthContext(c echo.Context, userID int32, username string) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UsernameKey, username)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newAuthHandlerFixture(t *testing.T) (*testutil.MockUserRepository, *AuthHandler) {
	t.Helper()
	userRepo := testutil.NewMockUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	userRepo.AddUser(&domain.User{ID: 1, Username: "admin", PasswordHash: string(hash)})
	return userRepo, NewAuthHandler(service.NewAuthService(userRepo, "secret"))
}

func TestLoginHandler_Success(t *testing.T) {
	e := echo.New()
	_, handler := newAuthHandlerFixture(t)

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Token == "" {
		t.Error("Expected a token in the response")
	}
	if response.User.Username != "admin" {
		t.Errorf("Expected username 'admin', got %s", response.User.Username)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	e := echo.New()
	_, handler := newAuthHandlerFixture(t)

	body := `{"username":"admin","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	e := echo.New()
	_, handler := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestVerifyHandler(t *testing.T) {
	e := echo.New()
	_, handler := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "admin")

	if err := handler.Verify(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != 1 || response.Username != "admin" {
		t.Errorf("Unexpected identity: %+v", response)
	}
}

func TestChangePasswordHandler_TooShort(t *testing.T) {
	e := echo.New()
	_, handler := newAuthHandlerFixture(t)

	body := `{"currentPassword":"admin123","newPassword":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "admin")

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestChangePasswordHandler_Success(t *testing.T) {
	e := echo.New()
	userRepo, handler := newAuthHandlerFixture(t)

	body := `{"currentPassword":"admin123","newPassword":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "admin")

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	user := userRepo.Users["admin"]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Error("Expected stored hash to match the new password")
	}
}
