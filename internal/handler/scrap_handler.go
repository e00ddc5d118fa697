package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type ScrapHandler struct {
	scrapService service.ScrapService
}

func NewScrapHandler(scrapService service.ScrapService) *ScrapHandler {
	return &ScrapHandler{scrapService: scrapService}
}

func (h *ScrapHandler) RegisterRoutes(router *gin.RouterGroup) {
	merchants := router.Group("/api/merchants")
	{
		merchants.GET("", h.GetMerchants)
		merchants.POST("", h.AddMerchant)
		merchants.DELETE("/:id", h.DeleteMerchant)
		merchants.GET("/summary", h.GetMerchantSummary)
		merchants.GET("/summary/export", h.ExportMerchantSummary)
		merchants.GET("/:id/export", h.ExportMerchantDetail)
	}

	scrap := router.Group("/api/scrap")
	{
		scrap.GET("", h.GetTransactions)
		scrap.POST("", h.CreateTransaction)
		scrap.PUT("/:id", h.UpdateTransaction)
		scrap.DELETE("/:id", h.DeleteTransaction)
	}
}

// GetMerchants lists the merchant registry
func (h *ScrapHandler) GetMerchants(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.scrapService.Merchants()))
}

// AddMerchant registers a new merchant
func (h *ScrapHandler) AddMerchant(c *gin.Context) {
	var req service.MerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	merchant, err := h.scrapService.AddMerchant(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, merchant))
}

// DeleteMerchant removes a merchant and every transaction recorded against it
func (h *ScrapHandler) DeleteMerchant(c *gin.Context) {
	if err := h.scrapService.DeleteMerchant(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Merchant deleted"))
}

// GetMerchantSummary returns every merchant's scrap-weight position
func (h *ScrapHandler) GetMerchantSummary(c *gin.Context) {
	summary := h.scrapService.MerchantSummary(c.Query("search"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// ExportMerchantSummary returns the positions as a print-ready table
func (h *ScrapHandler) ExportMerchantSummary(c *gin.Context) {
	summary := h.scrapService.MerchantSummary(c.Query("search"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.MerchantSummaryTable(summary)))
}

// ExportMerchantDetail returns one merchant's history as a print-ready table
func (h *ScrapHandler) ExportMerchantDetail(c *gin.Context) {
	id := c.Param("id")
	transactions := h.scrapService.ListTransactions(id, "")
	name := ledger.MerchantName(h.scrapService.Merchants(), model.FlexID(id))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.MerchantDetailTable(name, transactions)))
}

// GetTransactions lists scrap transactions, optionally scoped to one merchant
func (h *ScrapHandler) GetTransactions(c *gin.Context) {
	transactions := h.scrapService.ListTransactions(c.Query("merchant_id"), c.Query("search"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, transactions))
}

// CreateTransaction records a delivery or receipt
func (h *ScrapHandler) CreateTransaction(c *gin.Context) {
	var req service.ScrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	transaction, err := h.scrapService.CreateTransaction(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, transaction))
}

// UpdateTransaction replaces an existing transaction, keeping its id
func (h *ScrapHandler) UpdateTransaction(c *gin.Context) {
	var req service.ScrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	transaction, err := h.scrapService.UpdateTransaction(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, transaction))
}

// DeleteTransaction removes one transaction
func (h *ScrapHandler) DeleteTransaction(c *gin.Context) {
	if err := h.scrapService.DeleteTransaction(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Transaction deleted"))
}
