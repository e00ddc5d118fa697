package service

import (
	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
)

// InventorySnapshot is the reconciled position shown on the inventory page:
// every derived cash and gold balance over the full record store.
type InventorySnapshot struct {
	Totals          ledger.DailyTotals    `json:"totals"`
	CashFlow        ledger.CashFlow       `json:"cash_flow"`
	GoldBalance     ledger.GoldBalance    `json:"gold_balance"`
	OpeningBalances model.OpeningBalances `json:"opening_balances"`
	SalesWeight     model.Amount          `json:"sales_weight"`
	PurchasesWeight model.Amount          `json:"purchases_weight"`
}

type InventoryService interface {
	Snapshot() InventorySnapshot
	UpdateOpeningBalances(balances model.OpeningBalances) (InventorySnapshot, error)
}

type inventoryService struct {
	repo     repository.LedgerRepository
	notifier *Notifier
}

func NewInventoryService(repo repository.LedgerRepository, notifier *Notifier) InventoryService {
	return &inventoryService{repo: repo, notifier: notifier}
}

// buildInventorySnapshot folds the whole record store into one consistent
// set of derived totals. Recomputed from scratch on every call; there is no
// cached aggregate to drift.
func buildInventorySnapshot(repo repository.LedgerRepository) InventorySnapshot {
	sales := repo.Sales()
	purchases := repo.Purchases()
	expenses := repo.Expenses()
	debts := repo.FinancialDebts()
	scraps := repo.ScrapTransactions()
	opening := repo.OpeningBalances()

	return InventorySnapshot{
		Totals:          ledger.ComputeDailyTotals(sales, purchases, expenses),
		CashFlow:        ledger.ComputeCashFlow(sales, purchases, expenses, debts, opening.OpeningCashBalance.Decimal),
		GoldBalance:     ledger.ComputeGoldBalance(sales, purchases, scraps, opening),
		OpeningBalances: opening,
		SalesWeight:     ledger.SalesWeight(sales),
		PurchasesWeight: ledger.PurchasesWeight(purchases),
	}
}

func (s *inventoryService) Snapshot() InventorySnapshot {
	return buildInventorySnapshot(s.repo)
}

// UpdateOpeningBalances overwrites the manually entered period starting
// values. These are never rolled forward automatically; re-entering them at
// the start of each period is the shop's own reconciliation step.
func (s *inventoryService) UpdateOpeningBalances(balances model.OpeningBalances) (InventorySnapshot, error) {
	if err := s.repo.SaveOpeningBalances(balances); err != nil {
		return InventorySnapshot{}, err
	}
	s.notifier.PublishSnapshot()
	return buildInventorySnapshot(s.repo), nil
}
