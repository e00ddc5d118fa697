package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/store"
)

func newTestScrapService(t *testing.T) (ScrapService, repository.LedgerRepository) {
	t.Helper()
	repo := repository.NewLedgerRepository(store.NewMemory())
	return NewScrapService(repo, NewNotifier(repo, nil)), repo
}

func TestAddMerchantRequiresName(t *testing.T) {
	svc, _ := newTestScrapService(t)

	_, err := svc.AddMerchant(MerchantRequest{})
	assert.Error(t, err)

	merchant, err := svc.AddMerchant(MerchantRequest{Name: "Refinery"})
	require.NoError(t, err)
	assert.NotEmpty(t, merchant.ID)
	assert.Len(t, svc.Merchants(), 1)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, _ := newTestScrapService(t)

	_, err := svc.CreateTransaction(ScrapRequest{Type: model.ScrapDelivery, Weight: model.AmountFromFloat(10)})
	assert.Error(t, err) // no merchant

	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: "m1", Type: "melt", Weight: model.AmountFromFloat(10)})
	assert.Error(t, err) // bad type

	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: "m1", Type: model.ScrapDelivery})
	assert.Error(t, err) // zero weight

	transaction, err := svc.CreateTransaction(ScrapRequest{MerchantID: "m1", Type: model.ScrapDelivery, Weight: model.AmountFromFloat(10)})
	require.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.NotEmpty(t, transaction.Date)
}

func TestDeleteMerchantCascades(t *testing.T) {
	svc, repo := newTestScrapService(t)

	kept, err := svc.AddMerchant(MerchantRequest{Name: "Kept"})
	require.NoError(t, err)
	doomed, err := svc.AddMerchant(MerchantRequest{Name: "Doomed"})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: kept.ID, Type: model.ScrapDelivery, Weight: model.AmountFromFloat(5)})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: doomed.ID, Type: model.ScrapDelivery, Weight: model.AmountFromFloat(7)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMerchant(doomed.ID.String()))

	assert.Len(t, svc.Merchants(), 1)
	transactions := repo.ScrapTransactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, kept.ID, transactions[0].MerchantID)

	assert.ErrorIs(t, svc.DeleteMerchant("missing"), ErrNotFound)
}

func TestListTransactionsFilters(t *testing.T) {
	svc, _ := newTestScrapService(t)

	m1, err := svc.AddMerchant(MerchantRequest{Name: "Refinery"})
	require.NoError(t, err)
	m2, err := svc.AddMerchant(MerchantRequest{Name: "Other"})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: m1.ID, Type: model.ScrapDelivery, Weight: model.AmountFromFloat(5), Description: "broken chains"})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: m2.ID, Type: model.ScrapReceipt, Weight: model.AmountFromFloat(3), Description: "refined bar"})
	require.NoError(t, err)

	all := svc.ListTransactions("", "")
	assert.Len(t, all, 2)
	assert.Equal(t, "Refinery", all[0].MerchantName)

	scoped := svc.ListTransactions(m1.ID.String(), "")
	require.Len(t, scoped, 1)
	assert.Equal(t, "broken chains", scoped[0].Description)

	searched := svc.ListTransactions("", "refined")
	require.Len(t, searched, 1)
	assert.Equal(t, "Other", searched[0].MerchantName)
}

func TestMerchantSummarySearch(t *testing.T) {
	svc, _ := newTestScrapService(t)

	m1, err := svc.AddMerchant(MerchantRequest{Name: "Refinery"})
	require.NoError(t, err)
	_, err = svc.AddMerchant(MerchantRequest{Name: "Other"})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: m1.ID, Type: model.ScrapDelivery, Weight: model.AmountFromFloat(50)})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ScrapRequest{MerchantID: m1.ID, Type: model.ScrapReceipt, Weight: model.AmountFromFloat(10)})
	require.NoError(t, err)

	summaries := svc.MerchantSummary("refin")
	require.Len(t, summaries, 1)
	assert.Equal(t, "-40", summaries[0].WeightBalance.String())
}
