package repository

import (
	"log"

	"backend/internal/model"
	"backend/internal/store"
)

// Store keys, one per persisted collection or singleton. These are the
// legacy browser-storage key names and must not change.
const (
	KeySales             = "salesEntries"
	KeyPurchases         = "purchaseEntries"
	KeyExpenses          = "expenseEntries"
	KeyPricing           = "pricing"
	KeyMerchants         = "merchants"
	KeyScrapTransactions = "scrapTransactions"
	KeyOpeningNewGold    = "openingNewGoldBalance"
	KeyOpeningOldGold    = "openingOldGoldBalance"
	KeyPurchasedUsedGold = "purchasedUsedGold"
	KeyFinancialDebts    = "financialDebts"
	KeyOpeningCash       = "openingCashBalance"

	// KeyLegacyOpeningGold predates the new/old gold split and is read as the
	// new-gold opening balance when KeyOpeningNewGold is absent.
	KeyLegacyOpeningGold = "openingGoldBalance"
)

// BackupKeys is the full set of keys a backup document covers.
var BackupKeys = []string{
	KeySales,
	KeyPurchases,
	KeyExpenses,
	KeyPricing,
	KeyMerchants,
	KeyScrapTransactions,
	KeyOpeningNewGold,
	KeyOpeningOldGold,
	KeyPurchasedUsedGold,
	KeyFinancialDebts,
	KeyOpeningCash,
}

// LedgerRepository is the typed window onto the store. Reads apply the
// documented migrations (field backfills, legacy keys) in one place and fall
// back to empty defaults on storage errors, so the application stays usable
// with a broken or empty store. Writes replace the owning collection
// wholesale.
type LedgerRepository interface {
	Sales() []model.SaleEntry
	SaveSales(entries []model.SaleEntry) error
	Purchases() []model.PurchaseEntry
	SavePurchases(entries []model.PurchaseEntry) error
	Expenses() []model.ExpenseEntry
	SaveExpenses(entries []model.ExpenseEntry) error
	Merchants() []model.Merchant
	SaveMerchants(merchants []model.Merchant) error
	ScrapTransactions() []model.ScrapTransaction
	SaveScrapTransactions(transactions []model.ScrapTransaction) error
	FinancialDebts() []model.FinancialDebt
	SaveFinancialDebts(debts []model.FinancialDebt) error
	Pricing() model.PricingConfig
	SavePricing(cfg model.PricingConfig) error
	OpeningBalances() model.OpeningBalances
	SaveOpeningBalances(balances model.OpeningBalances) error

	Store() store.Port
}

type ledgerRepository struct {
	store store.Port
}

// NewLedgerRepository wraps a store port.
func NewLedgerRepository(s store.Port) LedgerRepository {
	return &ledgerRepository{store: s}
}

func (r *ledgerRepository) Store() store.Port { return r.store }

// loadOrDefault reads key into out, logging and leaving out untouched on
// error or absence. The tolerant model types absorb per-field garbage; this
// absorbs whole-document failures.
func (r *ledgerRepository) loadOrDefault(key string, out any) bool {
	found, err := r.store.Load(key, out)
	if err != nil {
		log.Printf("store: reading %q failed, using defaults: %v", key, err)
		return false
	}
	return found
}

func (r *ledgerRepository) Sales() []model.SaleEntry {
	entries := []model.SaleEntry{}
	r.loadOrDefault(KeySales, &entries)
	return entries
}

func (r *ledgerRepository) SaveSales(entries []model.SaleEntry) error {
	return r.store.Save(KeySales, entries)
}

func (r *ledgerRepository) Purchases() []model.PurchaseEntry {
	entries := []model.PurchaseEntry{}
	r.loadOrDefault(KeyPurchases, &entries)
	return entries
}

func (r *ledgerRepository) SavePurchases(entries []model.PurchaseEntry) error {
	return r.store.Save(KeyPurchases, entries)
}

func (r *ledgerRepository) Expenses() []model.ExpenseEntry {
	entries := []model.ExpenseEntry{}
	r.loadOrDefault(KeyExpenses, &entries)
	return entries
}

func (r *ledgerRepository) SaveExpenses(entries []model.ExpenseEntry) error {
	return r.store.Save(KeyExpenses, entries)
}

func (r *ledgerRepository) Merchants() []model.Merchant {
	merchants := []model.Merchant{}
	r.loadOrDefault(KeyMerchants, &merchants)
	return merchants
}

func (r *ledgerRepository) SaveMerchants(merchants []model.Merchant) error {
	return r.store.Save(KeyMerchants, merchants)
}

func (r *ledgerRepository) ScrapTransactions() []model.ScrapTransaction {
	transactions := []model.ScrapTransaction{}
	r.loadOrDefault(KeyScrapTransactions, &transactions)
	return transactions
}

func (r *ledgerRepository) SaveScrapTransactions(transactions []model.ScrapTransaction) error {
	return r.store.Save(KeyScrapTransactions, transactions)
}

func (r *ledgerRepository) FinancialDebts() []model.FinancialDebt {
	debts := []model.FinancialDebt{}
	r.loadOrDefault(KeyFinancialDebts, &debts)
	for i := range debts {
		if debts[i].Payments == nil {
			debts[i].Payments = []model.Payment{}
		}
	}
	return debts
}

func (r *ledgerRepository) SaveFinancialDebts(debts []model.FinancialDebt) error {
	return r.store.Save(KeyFinancialDebts, debts)
}

func (r *ledgerRepository) Pricing() model.PricingConfig {
	var cfg model.PricingConfig
	r.loadOrDefault(KeyPricing, &cfg)
	return cfg
}

func (r *ledgerRepository) SavePricing(cfg model.PricingConfig) error {
	return r.store.Save(KeyPricing, cfg)
}

func (r *ledgerRepository) OpeningBalances() model.OpeningBalances {
	var balances model.OpeningBalances
	if !r.loadOrDefault(KeyOpeningNewGold, &balances.OpeningNewGoldBalance) {
		// Migration: the original schema tracked a single opening gold
		// balance before splitting new and old gold.
		r.loadOrDefault(KeyLegacyOpeningGold, &balances.OpeningNewGoldBalance)
	}
	r.loadOrDefault(KeyOpeningOldGold, &balances.OpeningOldGoldBalance)
	r.loadOrDefault(KeyPurchasedUsedGold, &balances.PurchasedUsedGold)
	r.loadOrDefault(KeyOpeningCash, &balances.OpeningCashBalance)
	return balances
}

// SaveOpeningBalances writes each singleton under its own key, matching the
// historical one-key-per-value layout.
func (r *ledgerRepository) SaveOpeningBalances(balances model.OpeningBalances) error {
	if err := r.store.Save(KeyOpeningNewGold, balances.OpeningNewGoldBalance); err != nil {
		return err
	}
	// The legacy single-balance key is superseded once the split balances
	// land.
	if err := r.store.Delete(KeyLegacyOpeningGold); err != nil {
		return err
	}
	if err := r.store.Save(KeyOpeningOldGold, balances.OpeningOldGoldBalance); err != nil {
		return err
	}
	if err := r.store.Save(KeyPurchasedUsedGold, balances.PurchasedUsedGold); err != nil {
		return err
	}
	return r.store.Save(KeyOpeningCash, balances.OpeningCashBalance)
}
