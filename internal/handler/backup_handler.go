package handler

import (
	"net/http"

	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BackupHandler exposes the manual backup trigger
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Trigger handles POST /api/backup
func (h *BackupHandler) Trigger(c echo.Context) error {
	if err := h.backupService.Run(c.Request().Context()); err != nil {
		log.Error().Err(err).Msg("Manual backup failed")
		return NewInternalError(c, "Failed to run backup")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "completed"})
}
