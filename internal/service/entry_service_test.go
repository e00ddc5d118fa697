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

func newTestEntryService(t *testing.T) (EntryService, repository.LedgerRepository) {
	t.Helper()
	repo := repository.NewLedgerRepository(store.NewMemory())
	return NewEntryService(repo, NewNotifier(repo, nil)), repo
}

func TestCreateSaleValidation(t *testing.T) {
	svc, _ := newTestEntryService(t)

	_, err := svc.CreateSale(SaleRequest{Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)})
	assert.Error(t, err) // no description

	_, err = svc.CreateSale(SaleRequest{Description: "ring", FinalPrice: model.AmountFromFloat(100)})
	assert.Error(t, err) // zero weight

	_, err = svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5)})
	assert.Error(t, err) // zero price

	_, err = svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100), Karat: "19"})
	assert.Error(t, err) // bad karat
}

func TestCreateSaleDefaults(t *testing.T) {
	svc, repo := newTestEntryService(t)

	entry, err := svc.CreateSale(SaleRequest{
		Description: "ring",
		Weight:      model.AmountFromFloat(5),
		FinalPrice:  model.AmountFromFloat(100),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.Date)
	assert.Equal(t, model.Karat21, entry.Karat)
	// No amountPaid given means paid in full.
	assert.Equal(t, "100", entry.AmountPaid.String())

	require.Len(t, repo.Sales(), 1)
}

func TestCreateSalePartialPayment(t *testing.T) {
	svc, _ := newTestEntryService(t)

	paid := model.AmountFromFloat(40)
	entry, err := svc.CreateSale(SaleRequest{
		Description: "ring",
		Weight:      model.AmountFromFloat(5),
		FinalPrice:  model.AmountFromFloat(100),
		AmountPaid:  &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, "40", entry.AmountPaid.String())
	assert.Equal(t, "60", entry.Outstanding().String())
}

func TestCreateSaleExplicitZeroPaidIsCredit(t *testing.T) {
	svc, _ := newTestEntryService(t)

	zero := model.AmountFromFloat(0)
	entry, err := svc.CreateSale(SaleRequest{
		Description:  "ring",
		Weight:       model.AmountFromFloat(5),
		CustomerName: "Mona",
		FinalPrice:   model.AmountFromFloat(100),
		AmountPaid:   &zero,
	})
	require.NoError(t, err)

	// An explicit zero records a sale fully on credit.
	assert.True(t, entry.AmountPaid.IsZero())
	assert.Equal(t, "100", entry.Outstanding().String())

	debts := ledger.ComputeCustomerDebts([]model.SaleEntry{entry})
	require.Len(t, debts, 1)
	assert.Equal(t, "100", debts[0].Balance.String())
}

func TestCreatePurchaseExplicitZeroPaidIsCredit(t *testing.T) {
	svc, _ := newTestEntryService(t)

	zero := model.AmountFromFloat(0)
	entry, err := svc.CreatePurchase(PurchaseRequest{
		Description:  "bangles",
		Weight:       model.AmountFromFloat(25),
		Cost:         model.AmountFromFloat(300),
		AmountPaid:   &zero,
		SupplierName: "supplier",
	})
	require.NoError(t, err)

	assert.True(t, entry.AmountPaid.IsZero())
	assert.Equal(t, "300", entry.Cost.String())
}

func TestUpdateSalePaymentEntry(t *testing.T) {
	svc, repo := newTestEntryService(t)

	require.NoError(t, repo.SaveSales([]model.SaleEntry{{
		ID:           "p1",
		Date:         "2024-03-15",
		Description:  "Payment on account",
		CustomerName: "Mona",
		AmountPaid:   model.AmountFromFloat(50),
	}}))

	paid := model.AmountFromFloat(75)
	updated, err := svc.UpdateSale("p1", SaleRequest{
		Description:  "Payment on account",
		CustomerName: "Mona",
		AmountPaid:   &paid,
	})
	require.NoError(t, err)

	assert.Equal(t, "75", updated.AmountPaid.String())
	assert.True(t, updated.IsPayment())

	// A payment row still needs a positive amount and a customer.
	_, err = svc.UpdateSale("p1", SaleRequest{Description: "Payment on account", CustomerName: "Mona"})
	assert.Error(t, err)
	zero := model.AmountFromFloat(0)
	_, err = svc.UpdateSale("p1", SaleRequest{Description: "Payment on account", CustomerName: "Mona", AmountPaid: &zero})
	assert.Error(t, err)
	_, err = svc.UpdateSale("p1", SaleRequest{Description: "Payment on account", AmountPaid: &paid})
	assert.Error(t, err)
}

func TestUpdateSaleKeepsID(t *testing.T) {
	svc, _ := newTestEntryService(t)

	created, err := svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)})
	require.NoError(t, err)

	updated, err := svc.UpdateSale(created.ID.String(), SaleRequest{Description: "bracelet", Weight: model.AmountFromFloat(8), FinalPrice: model.AmountFromFloat(200)})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "bracelet", updated.Description)

	_, err = svc.UpdateSale("missing", SaleRequest{Description: "x", Weight: model.AmountFromFloat(1), FinalPrice: model.AmountFromFloat(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAndClearSales(t *testing.T) {
	svc, repo := newTestEntryService(t)

	created, err := svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteSale("missing"), ErrNotFound)
	require.NoError(t, svc.DeleteSale(created.ID.String()))
	assert.Empty(t, repo.Sales())

	_, err = svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)})
	require.NoError(t, err)
	require.NoError(t, svc.ClearSales())
	assert.Empty(t, repo.Sales())
}

func TestListSalesSearchAndPeriod(t *testing.T) {
	svc, _ := newTestEntryService(t)

	for _, req := range []SaleRequest{
		{Date: "2024-03-15", Description: "gold ring", CustomerName: "Mona", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)},
		{Date: "2024-03-01", Description: "bracelet", CustomerName: "Ali", Weight: model.AmountFromFloat(8), FinalPrice: model.AmountFromFloat(200)},
	} {
		_, err := svc.CreateSale(req)
		require.NoError(t, err)
	}

	assert.Len(t, svc.ListSales(EntryFilter{}), 2)
	assert.Len(t, svc.ListSales(EntryFilter{Search: "RING"}), 1)
	assert.Len(t, svc.ListSales(EntryFilter{Search: "mona"}), 1)
	assert.Len(t, svc.ListSales(EntryFilter{Search: "2024-03-01"}), 1)
	assert.Empty(t, svc.ListSales(EntryFilter{Search: "necklace"}))

	custom := svc.ListSales(EntryFilter{Period: ledger.PeriodCustom, Start: "2024-03-10", End: "2024-03-20"})
	require.Len(t, custom, 1)
	assert.Equal(t, "gold ring", custom[0].Description)
}

func TestExpenseValidationAndTotals(t *testing.T) {
	svc, _ := newTestEntryService(t)

	_, err := svc.CreateExpense(ExpenseRequest{Amount: model.AmountFromFloat(50)})
	assert.Error(t, err) // no category

	_, err = svc.CreateExpense(ExpenseRequest{Category: "rent"})
	assert.Error(t, err) // zero amount

	_, err = svc.CreateExpense(ExpenseRequest{Category: "rent", Amount: model.AmountFromFloat(50)})
	require.NoError(t, err)

	_, err = svc.CreatePurchase(PurchaseRequest{Description: "bangles", Weight: model.AmountFromFloat(25), Cost: model.AmountFromFloat(300)})
	require.NoError(t, err)

	_, err = svc.CreateSale(SaleRequest{Description: "ring", Weight: model.AmountFromFloat(5), FinalPrice: model.AmountFromFloat(100)})
	require.NoError(t, err)

	totals := svc.DailyTotals()
	assert.Equal(t, "100", totals.SalesTotal.String())
	assert.Equal(t, "300", totals.PurchaseTotal.String())
	assert.Equal(t, "50", totals.ExpenseTotal.String())
}
