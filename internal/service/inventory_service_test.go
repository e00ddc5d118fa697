package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/store"
)

func newTestInventoryService(t *testing.T) (InventoryService, repository.LedgerRepository) {
	t.Helper()
	repo := repository.NewLedgerRepository(store.NewMemory())
	return NewInventoryService(repo, NewNotifier(repo, nil)), repo
}

func TestSnapshotReconcilesLedgers(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	require.NoError(t, repo.SaveSales([]model.SaleEntry{
		{ID: "s1", Weight: model.AmountFromFloat(10), FinalPrice: model.AmountFromFloat(2500), AmountPaid: model.AmountFromFloat(2000)},
	}))
	require.NoError(t, repo.SavePurchases([]model.PurchaseEntry{
		{ID: "b1", Weight: model.AmountFromFloat(25), Cost: model.AmountFromFloat(300), AmountPaid: model.AmountFromFloat(300)},
	}))
	require.NoError(t, repo.SaveOpeningBalances(model.OpeningBalances{
		OpeningNewGoldBalance: model.AmountFromFloat(50),
		OpeningCashBalance:    model.AmountFromFloat(100),
	}))

	snapshot := svc.Snapshot()

	assert.Equal(t, "65", snapshot.GoldBalance.EndingNewGoldBalance.String())
	assert.Equal(t, "2000", snapshot.CashFlow.TotalCashIn.String())
	assert.Equal(t, "300", snapshot.CashFlow.TotalCashOut.String())
	assert.Equal(t, "1800", snapshot.CashFlow.ClosingCashBalance.String())
	assert.Equal(t, "10", snapshot.SalesWeight.String())
	assert.Equal(t, "25", snapshot.PurchasesWeight.String())
}

func TestUpdateOpeningBalancesReturnsFreshSnapshot(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	snapshot, err := svc.UpdateOpeningBalances(model.OpeningBalances{
		OpeningNewGoldBalance: model.AmountFromFloat(75),
	})
	require.NoError(t, err)

	assert.Equal(t, "75", snapshot.GoldBalance.EndingNewGoldBalance.String())
	assert.Equal(t, "75", repo.OpeningBalances().OpeningNewGoldBalance.String())
}
