package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/ledger"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
)

type SalesHandler struct {
	entryService service.EntryService
}

func NewSalesHandler(entryService service.EntryService) *SalesHandler {
	return &SalesHandler{entryService: entryService}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api/sales")
	{
		sales.GET("", h.GetSales)
		sales.POST("", h.CreateSale)
		sales.PUT("/:id", h.UpdateSale)
		sales.DELETE("/:id", h.DeleteSale)
		sales.DELETE("", h.ClearSales)
		sales.GET("/export", h.ExportSales)
	}
}

// entryFilter reads the shared list-filter query parameters
func entryFilter(c *gin.Context) service.EntryFilter {
	return service.EntryFilter{
		Search: c.Query("search"),
		Period: ledger.ParsePeriod(c.Query("period")),
		Start:  c.Query("start"),
		End:    c.Query("end"),
	}
}

// GetSales returns the sales ledger, filtered and paginated
func (h *SalesHandler) GetSales(c *gin.Context) {
	entries := h.entryService.ListSales(entryFilter(c))
	p := pagination.Parse(c)
	lo, hi := p.Bounds(len(entries))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"entries": entries[lo:hi],
		"total":   len(entries),
		"page":    p.Page,
		"limit":   p.Limit,
	}))
}

// CreateSale records a new sale entry
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req service.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.CreateSale(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// UpdateSale replaces an existing entry, keeping its id
func (h *SalesHandler) UpdateSale(c *gin.Context) {
	var req service.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.UpdateSale(c.Param("id"), req)
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

// DeleteSale removes one entry
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	if err := h.entryService.DeleteSale(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Sale deleted"))
}

// ClearSales wipes the whole sales ledger
func (h *SalesHandler) ClearSales(c *gin.Context) {
	if err := h.entryService.ClearSales(); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Sales cleared"))
}

// ExportSales returns the filtered ledger as a print-ready table
func (h *SalesHandler) ExportSales(c *gin.Context) {
	entries := h.entryService.ListSales(entryFilter(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.SalesTable(entries)))
}
