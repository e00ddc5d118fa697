package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
)

type PurchaseHandler struct {
	entryService service.EntryService
}

func NewPurchaseHandler(entryService service.EntryService) *PurchaseHandler {
	return &PurchaseHandler{entryService: entryService}
}

func (h *PurchaseHandler) RegisterRoutes(router *gin.RouterGroup) {
	purchases := router.Group("/api/purchases")
	{
		purchases.GET("", h.GetPurchases)
		purchases.POST("", h.CreatePurchase)
		purchases.PUT("/:id", h.UpdatePurchase)
		purchases.DELETE("/:id", h.DeletePurchase)
		purchases.DELETE("", h.ClearPurchases)
		purchases.GET("/export", h.ExportPurchases)
	}
}

// GetPurchases returns the purchase ledger, filtered and paginated
func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	entries := h.entryService.ListPurchases(entryFilter(c))
	p := pagination.Parse(c)
	lo, hi := p.Bounds(len(entries))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"entries": entries[lo:hi],
		"total":   len(entries),
		"page":    p.Page,
		"limit":   p.Limit,
	}))
}

// CreatePurchase records a new purchase entry
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req service.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.CreatePurchase(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// UpdatePurchase replaces an existing entry, keeping its id
func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	var req service.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.UpdatePurchase(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entry))
}

// DeletePurchase removes one entry
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	if err := h.entryService.DeletePurchase(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Purchase deleted"))
}

// ClearPurchases wipes the whole purchase ledger
func (h *PurchaseHandler) ClearPurchases(c *gin.Context) {
	if err := h.entryService.ClearPurchases(); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Purchases cleared"))
}

// ExportPurchases returns the filtered ledger as a print-ready table
func (h *PurchaseHandler) ExportPurchases(c *gin.Context) {
	entries := h.entryService.ListPurchases(entryFilter(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.PurchasesTable(entries)))
}
