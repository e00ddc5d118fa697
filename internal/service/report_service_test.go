package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/store"
)

func TestGenerateReport(t *testing.T) {
	repo := repository.NewLedgerRepository(store.NewMemory())
	svc := NewReportService(repo)

	require.NoError(t, repo.SaveSales([]model.SaleEntry{
		{ID: "s1", Date: "2024-03-05", Weight: model.AmountFromFloat(10), FinalPrice: model.AmountFromFloat(2000), AmountPaid: model.AmountFromFloat(2000)},
		{ID: "s2", Date: "2023-12-01", Weight: model.AmountFromFloat(3), FinalPrice: model.AmountFromFloat(500), AmountPaid: model.AmountFromFloat(500)},
	}))
	require.NoError(t, repo.SavePurchases([]model.PurchaseEntry{
		{ID: "b1", Date: "2024-03-06", Weight: model.AmountFromFloat(25), Cost: model.AmountFromFloat(700), AmountPaid: model.AmountFromFloat(700)},
	}))
	require.NoError(t, repo.SaveExpenses([]model.ExpenseEntry{
		{ID: "e1", Date: "2024-03-07", Category: "rent", Amount: model.AmountFromFloat(300)},
	}))

	report := svc.Generate(ledger.PeriodCustom, "2024-03-01", "2024-03-31")

	assert.Equal(t, "2000", report.Summary.SalesTotal.String())
	assert.Equal(t, "10", report.Summary.SalesWeight.String())
	assert.Equal(t, "700", report.Summary.PurchaseTotal.String())
	assert.Equal(t, "25", report.Summary.PurchaseWeight.String())
	assert.Equal(t, "300", report.Summary.ExpenseTotal.String())
	assert.Equal(t, "1000", report.Summary.EstimatedProfit.String())
	assert.Equal(t, "15", report.Summary.NetGoldMovement.String())

	assert.Len(t, report.Sales, 1)
	assert.Len(t, report.Purchases, 1)
	assert.Len(t, report.Expenses, 1)

	all := svc.Generate(ledger.PeriodAll, "", "")
	assert.Len(t, all.Sales, 2)
	assert.Equal(t, "2500", all.Summary.SalesTotal.String())
}
