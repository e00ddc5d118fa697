package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/service"
	"backend/pkg/response"
)

// maxBackupSize caps uploaded backup files at 16 MiB.
const maxBackupSize = 16 << 20

type SettingsHandler struct {
	backupService service.BackupService
}

func NewSettingsHandler(backupService service.BackupService) *SettingsHandler {
	return &SettingsHandler{backupService: backupService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	backup := router.Group("/api/backup")
	{
		backup.GET("", h.ExportBackup)
		backup.POST("/restore", h.RestoreBackup)
	}
}

// ExportBackup returns the full ledger as a downloadable JSON document
func (h *SettingsHandler) ExportBackup(c *gin.Context) {
	backup, err := h.backupService.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+backup.Filename+`"`)
	c.JSON(http.StatusOK, backup.Data)
}

// RestoreBackup replaces the whole ledger from an uploaded backup file.
// The write is all-or-nothing; a malformed file leaves the store untouched
func (h *SettingsHandler) RestoreBackup(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "could not read request body"))
		return
	}

	if err := h.backupService.Restore(payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Backup restored"))
}
