package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type PricingHandler struct {
	pricingService service.PricingService
}

func NewPricingHandler(pricingService service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

func (h *PricingHandler) RegisterRoutes(router *gin.RouterGroup) {
	pricing := router.Group("/api/pricing")
	{
		pricing.GET("", h.GetConfig)
		pricing.PUT("", h.UpdateConfig)
		pricing.POST("/quote", h.Quote)
		pricing.POST("/quick-sale", h.QuickSale)
	}
}

// GetConfig returns the current price sheet
func (h *PricingHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.pricingService.Config()))
}

// UpdateConfig replaces the price sheet
func (h *PricingHandler) UpdateConfig(c *gin.Context) {
	var req model.PricingConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	cfg, err := h.pricingService.UpdateConfig(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

// Quote prices a piece at the requested weight and karat
func (h *PricingHandler) Quote(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quote, err := h.pricingService.Quote(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// QuickSale quotes a piece and books it onto the sales ledger in one step
func (h *PricingHandler) QuickSale(c *gin.Context) {
	var req service.QuickSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.pricingService.QuickSale(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}
