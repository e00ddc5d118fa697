package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api/inventory")
	{
		inventory.GET("", h.GetSnapshot)
		inventory.PUT("/opening-balances", h.UpdateOpeningBalances)
		inventory.GET("/export", h.ExportSummary)
	}
}

// GetSnapshot returns the reconciled cash and gold position
func (h *InventoryHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.inventoryService.Snapshot()))
}

// UpdateOpeningBalances replaces the opening balances and returns the
// recomputed snapshot
func (h *InventoryHandler) UpdateOpeningBalances(c *gin.Context) {
	var req model.OpeningBalances
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	snapshot, err := h.inventoryService.UpdateOpeningBalances(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, snapshot))
}

// ExportSummary returns the balances as a print-ready table
func (h *InventoryHandler) ExportSummary(c *gin.Context) {
	snapshot := h.inventoryService.Snapshot()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.InventoryTable(snapshot)))
}
