package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/store"
	"backend/pkg/whatsapp"
)

func newTestDebtService(t *testing.T) (DebtService, repository.LedgerRepository) {
	t.Helper()
	repo := repository.NewLedgerRepository(store.NewMemory())
	return NewDebtService(repo, whatsapp.New(""), NewNotifier(repo, nil)), repo
}

func TestCustomerDebtLifecycle(t *testing.T) {
	svc, repo := newTestDebtService(t)

	require.NoError(t, repo.SaveSales([]model.SaleEntry{
		{ID: "s1", CustomerName: "Mona", CustomerPhone: "0100111", FinalPrice: model.AmountFromFloat(1000), AmountPaid: model.AmountFromFloat(400)},
	}))

	debts := svc.CustomerDebts("")
	require.Len(t, debts, 1)
	assert.Equal(t, "600", debts[0].Balance.String())
	assert.True(t, strings.HasPrefix(debts[0].WhatsAppLink, "https://wa.me/2100111?text="))

	// Recording a payment closes the balance without touching prior entries.
	entry, err := svc.RecordCustomerPayment(CustomerPaymentRequest{
		CustomerName: "Mona",
		Amount:       model.AmountFromFloat(600),
	})
	require.NoError(t, err)
	assert.True(t, entry.IsPayment())

	assert.Empty(t, svc.CustomerDebts(""))
	assert.Len(t, svc.CustomerTransactions("Mona"), 2)
	assert.Len(t, repo.Sales(), 2)
}

func TestRecordCustomerPaymentValidation(t *testing.T) {
	svc, _ := newTestDebtService(t)

	_, err := svc.RecordCustomerPayment(CustomerPaymentRequest{Amount: model.AmountFromFloat(10)})
	assert.ErrorIs(t, err, ledger.ErrMissingCustomer)

	_, err = svc.RecordCustomerPayment(CustomerPaymentRequest{CustomerName: "Mona"})
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
}

func TestFinancialDebtLifecycle(t *testing.T) {
	svc, _ := newTestDebtService(t)

	_, err := svc.CreateDebt(DebtRequest{InitialAmount: model.AmountFromFloat(100)})
	assert.ErrorIs(t, err, ledger.ErrMissingCreditor)

	created, err := svc.CreateDebt(DebtRequest{
		SupplierName:  "Bank",
		SupplierPhone: "0100333",
		InitialAmount: model.AmountFromFloat(5000),
		Notes:         "gold loan",
	})
	require.NoError(t, err)
	assert.Equal(t, "5000", created.Balance.String())
	assert.NotEmpty(t, created.Date)

	got, err := svc.GetDebt(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Bank", got.SupplierName)

	result, err := svc.AddDebtPayment(created.ID.String(), DebtPaymentRequest{Amount: model.AmountFromFloat(2000)})
	require.NoError(t, err)
	assert.Equal(t, "3000", result.Debt.Balance.String())
	assert.Contains(t, result.ReceiptLink, "wa.me/2100333")

	assert.Equal(t, "3000", svc.TotalDebtBalance().String())

	// Settling removes the debt from the active list but keeps history.
	_, err = svc.AddDebtPayment(created.ID.String(), DebtPaymentRequest{Amount: model.AmountFromFloat(3000)})
	require.NoError(t, err)

	assert.Empty(t, svc.ListDebts(false))
	all := svc.ListDebts(true)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Payments, 2)

	settled, err := svc.GetDebt(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "0", settled.Balance.String())

	require.NoError(t, svc.DeleteDebt(created.ID.String()))
	assert.ErrorIs(t, svc.DeleteDebt(created.ID.String()), ErrNotFound)
}

func TestAddDebtPaymentUnknownDebt(t *testing.T) {
	svc, _ := newTestDebtService(t)

	_, err := svc.AddDebtPayment("missing", DebtPaymentRequest{Amount: model.AmountFromFloat(10)})
	assert.ErrorIs(t, err, ErrNotFound)
}
