package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/ledger"
	"backend/internal/service"
	"backend/pkg/response"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("", h.GetReport)
	}
}

// GetReport returns the period summary with the underlying records
func (h *ReportHandler) GetReport(c *gin.Context) {
	report := h.reportService.Generate(
		ledger.ParsePeriod(c.Query("period")),
		c.Query("start"),
		c.Query("end"),
	)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
