package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/internal/service"
	"backend/pkg/response"
)

type DebtHandler struct {
	debtService service.DebtService
}

func NewDebtHandler(debtService service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

func (h *DebtHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/api/customers")
	{
		customers.GET("/debts", h.GetCustomerDebts)
		customers.GET("/transactions", h.GetCustomerTransactions)
		customers.POST("/payments", h.RecordCustomerPayment)
	}

	debts := router.Group("/api/debts")
	{
		debts.GET("", h.GetDebts)
		debts.POST("", h.CreateDebt)
		debts.GET("/:id", h.GetDebt)
		debts.DELETE("/:id", h.DeleteDebt)
		debts.POST("/:id/payments", h.AddDebtPayment)
	}
}

// GetCustomerDebts lists every customer carrying an unsettled balance
func (h *DebtHandler) GetCustomerDebts(c *gin.Context) {
	debts := h.debtService.CustomerDebts(c.Query("search"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, debts))
}

// GetCustomerTransactions returns one customer's sale and payment history
func (h *DebtHandler) GetCustomerTransactions(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "name query parameter is required"))
		return
	}
	transactions := h.debtService.CustomerTransactions(name)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, transactions))
}

// RecordCustomerPayment books a payment-only entry against a customer balance
func (h *DebtHandler) RecordCustomerPayment(c *gin.Context) {
	var req service.CustomerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.debtService.RecordCustomerPayment(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// GetDebts lists financial debts; settled ones are hidden unless
// include_settled=true
func (h *DebtHandler) GetDebts(c *gin.Context) {
	includeSettled, _ := strconv.ParseBool(c.DefaultQuery("include_settled", "false"))
	debts := h.debtService.ListDebts(includeSettled)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"debts":         debts,
		"total_balance": h.debtService.TotalDebtBalance(),
	}))
}

// GetDebt returns one debt with its payment history and derived totals
func (h *DebtHandler) GetDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebt(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, debt))
}

// CreateDebt registers a new financial debt
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req service.DebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, debt))
}

// DeleteDebt removes a debt and its payment history
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	if err := h.debtService.DeleteDebt(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Debt deleted"))
}

// AddDebtPayment records a payment against a debt
func (h *DebtHandler) AddDebtPayment(c *gin.Context) {
	var req service.DebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.debtService.AddDebtPayment(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}
