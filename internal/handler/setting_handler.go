package handler

import (
	"errors"
	"net/http"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SettingHandler handles settings HTTP requests
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// TargetResponse carries the monthly revenue target
type TargetResponse struct {
	Target string `json:"target"`
}

// TargetRequest is the set-target payload
type TargetRequest struct {
	Target decimal.Decimal `json:"target"`
}

// GetTarget handles GET /api/settings/target
func (h *SettingHandler) GetTarget(c echo.Context) error {
	target, err := h.settingService.GetMonthlyTarget()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return NewInvalidStateError(c, "Stored monthly target is invalid")
		}
		log.Error().Err(err).Msg("Failed to get monthly target")
		return NewInternalError(c, "Failed to retrieve monthly target")
	}

	return c.JSON(http.StatusOK, TargetResponse{Target: target.StringFixed(2)})
}

// SetTarget handles POST /api/settings/target
func (h *SettingHandler) SetTarget(c echo.Context) error {
	var req TargetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := h.settingService.SetMonthlyTarget(req.Target); err != nil {
		if errors.Is(err, domain.ErrInvalidTarget) {
			return NewValidationError(c, "Target must be a positive amount", []ValidationError{
				{Field: "target", Message: "Must be positive"},
			})
		}
		log.Error().Err(err).Msg("Failed to set monthly target")
		return NewInternalError(c, "Failed to save monthly target")
	}

	return c.JSON(http.StatusOK, TargetResponse{Target: req.Target.StringFixed(2)})
}
