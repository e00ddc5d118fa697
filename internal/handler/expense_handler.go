package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
)

type ExpenseHandler struct {
	entryService service.EntryService
}

func NewExpenseHandler(entryService service.EntryService) *ExpenseHandler {
	return &ExpenseHandler{entryService: entryService}
}

func (h *ExpenseHandler) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/api/expenses")
	{
		expenses.GET("", h.GetExpenses)
		expenses.POST("", h.CreateExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
		expenses.DELETE("", h.ClearExpenses)
		expenses.GET("/export", h.ExportExpenses)
	}
}

// GetExpenses returns the expense ledger, filtered and paginated
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	entries := h.entryService.ListExpenses(entryFilter(c))
	p := pagination.Parse(c)
	lo, hi := p.Bounds(len(entries))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"entries": entries[lo:hi],
		"total":   len(entries),
		"page":    p.Page,
		"limit":   p.Limit,
	}))
}

// CreateExpense records a new expense entry
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req service.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.CreateExpense(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// UpdateExpense replaces an existing entry, keeping its id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req service.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.entryService.UpdateExpense(c.Param("id"), req)
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

// DeleteExpense removes one entry
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.entryService.DeleteExpense(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Expense deleted"))
}

// ClearExpenses wipes the whole expense ledger
func (h *ExpenseHandler) ClearExpenses(c *gin.Context) {
	if err := h.entryService.ClearExpenses(); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Expenses cleared"))
}

// ExportExpenses returns the filtered ledger as a print-ready table
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	entries := h.entryService.ListExpenses(entryFilter(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.ExpensesTable(entries)))
}
