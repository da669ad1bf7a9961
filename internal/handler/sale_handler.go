package handler

import (
	"errors"
	"net/http"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SaleHandler handles sales-ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// SaleResponse represents a ledger entry in API responses
type SaleResponse struct {
	ID           int32   `json:"id"`
	Date         string  `json:"date"`
	ProfileID    int32   `json:"profileId"`
	ProfileName  string  `json:"profileName,omitempty"`
	ProfileColor string  `json:"profileColor,omitempty"`
	Amount       string  `json:"amount"`
	Notes        *string `json:"notes"`
}

// SaveDayRequest is the batch payload for one day's amounts
type SaveDayRequest struct {
	Date  string        `json:"date"`
	Notes *string       `json:"notes"`
	Sales []DayItemBody `json:"sales"`
}

// DayItemBody is one element of the batch
type DayItemBody struct {
	ProfileID int32           `json:"profileId"`
	Amount    decimal.Decimal `json:"amount"`
}

func toSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		Date:         util.FormatDate(s.SaleDate),
		ProfileID:    s.ProfileID,
		ProfileName:  s.ProfileName,
		ProfileColor: s.ProfileColor,
		Amount:       s.Amount.StringFixed(2),
		Notes:        s.Notes,
	}
}

// List handles GET /api/sales?startDate&endDate&profileId
func (h *SaleHandler) List(c echo.Context) error {
	start, err := util.ParseDate(c.QueryParam("startDate"))
	if err != nil {
		return NewValidationError(c, "Invalid or missing startDate (expected YYYY-MM-DD)", nil)
	}
	end, err := util.ParseDate(c.QueryParam("endDate"))
	if err != nil {
		return NewValidationError(c, "Invalid or missing endDate (expected YYYY-MM-DD)", nil)
	}

	var profileID *int32
	if raw := c.QueryParam("profileId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return NewValidationError(c, "Invalid profileId", nil)
		}
		profileID = &id
	}

	sales, err := h.saleService.GetByDateRange(start, end, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return NewValidationError(c, "endDate must not be before startDate", nil)
		}
		log.Error().Err(err).Msg("Failed to list sales")
		return NewInternalError(c, "Failed to retrieve sales")
	}

	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// GetByDate handles GET /api/sales/date/:date
func (h *SaleHandler) GetByDate(c echo.Context) error {
	date, err := util.ParseDate(c.Param("date"))
	if err != nil {
		return NewValidationError(c, "Invalid date (expected YYYY-MM-DD)", nil)
	}

	sales, err := h.saleService.GetByDate(date)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get sales by date")
		return NewInternalError(c, "Failed to retrieve sales")
	}

	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// SaveDay handles POST /api/sales — records a whole day's amounts, one
// entry per profile. Resubmitting a (date, profile) pair overwrites the
// earlier amount.
func (h *SaleHandler) SaveDay(c echo.Context) error {
	var req SaveDayRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date (expected YYYY-MM-DD)", []ValidationError{
			{Field: "date", Message: "Expected YYYY-MM-DD"},
		})
	}
	if len(req.Sales) == 0 {
		return NewValidationError(c, "At least one sale entry is required", []ValidationError{
			{Field: "sales", Message: "Must not be empty"},
		})
	}

	items := make([]service.DayItem, 0, len(req.Sales))
	for _, item := range req.Sales {
		items = append(items, service.DayItem{ProfileID: item.ProfileID, Amount: item.Amount})
	}

	saved, err := h.saleService.SaveDay(date, req.Notes, items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Each entry needs a valid profileId", nil)
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Amounts must not be negative", nil)
		case errors.Is(err, domain.ErrProfileNotFound):
			return NewNotFoundError(c, "One of the referenced profiles does not exist")
		default:
			log.Error().Err(err).Str("date", req.Date).Msg("Failed to save sales")
			return NewInternalError(c, "Failed to save sales")
		}
	}

	out := make([]SaleResponse, 0, len(saved))
	for _, s := range saved {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(http.StatusCreated, out)
}

// Delete handles DELETE /api/sales/:id
func (h *SaleHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid sale ID", nil)
	}

	if err := h.saleService.Delete(id); err != nil {
		log.Error().Err(err).Int32("sale_id", id).Msg("Failed to delete sale")
		return NewInternalError(c, "Failed to delete sale")
	}

	return c.NoContent(http.StatusNoContent)
}
