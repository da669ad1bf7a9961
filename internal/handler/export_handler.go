package handler

import (
	"errors"
	"net/http"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/dourado/shopdash-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler handles CSV export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV handles GET /api/export/csv?startDate&endDate&profileId
func (h *ExportHandler) ExportCSV(c echo.Context) error {
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

	data, err := h.exportService.ExportCSV(start, end, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return NewValidationError(c, "endDate must not be before startDate", nil)
		}
		log.Error().Err(err).Msg("Failed to export CSV")
		return NewInternalError(c, "Failed to generate export")
	}

	filename := h.exportService.Filename(start, end)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
