package service

import (
	"backend/internal/ledger"
	"backend/internal/model"
)

// TableView is a print-ready table: the same shape every export endpoint
// returns so the client can render or download any of them the same way.
type TableView struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func money(a model.Amount) string {
	return a.Decimal.StringFixed(2)
}

// SalesTable renders the sales ledger for export.
func SalesTable(entries []model.SaleEntry) TableView {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			e.Description,
			money(e.Weight),
			e.Karat,
			e.CustomerName,
			money(e.FinalPrice),
			money(e.AmountPaid),
			money(model.NewAmount(e.Outstanding())),
		})
	}
	return TableView{
		Title:   "Sales",
		Headers: []string{"Date", "Description", "Weight (g)", "Karat", "Customer", "Price", "Paid", "Outstanding"},
		Rows:    rows,
	}
}

// PurchasesTable renders the purchase ledger for export.
func PurchasesTable(entries []model.PurchaseEntry) TableView {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			e.Description,
			money(e.Weight),
			e.SupplierName,
			money(e.Cost),
			money(e.AmountPaid),
		})
	}
	return TableView{
		Title:   "Purchases",
		Headers: []string{"Date", "Description", "Weight (g)", "Supplier", "Cost", "Paid"},
		Rows:    rows,
	}
}

// ExpensesTable renders the expense ledger for export.
func ExpensesTable(entries []model.ExpenseEntry) TableView {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Date, e.Category, money(e.Amount), e.Note})
	}
	return TableView{
		Title:   "Expenses",
		Headers: []string{"Date", "Category", "Amount", "Note"},
		Rows:    rows,
	}
}

// InventoryTable renders the reconciled balances as labelled figures.
func InventoryTable(snapshot InventorySnapshot) TableView {
	rows := [][]string{
		{"Total cash in", money(snapshot.CashFlow.TotalCashIn)},
		{"Total cash out", money(snapshot.CashFlow.TotalCashOut)},
		{"Net cash flow", money(snapshot.CashFlow.NetCashFlow)},
		{"Closing cash balance", money(snapshot.CashFlow.ClosingCashBalance)},
		{"Ending new gold balance (g)", money(snapshot.GoldBalance.EndingNewGoldBalance)},
		{"Ending old gold balance (g)", money(snapshot.GoldBalance.EndingOldGoldBalance)},
		{"Ending total gold balance (g)", money(snapshot.GoldBalance.EndingTotalGoldBalance)},
	}
	return TableView{
		Title:   "Inventory summary",
		Headers: []string{"Figure", "Value"},
		Rows:    rows,
	}
}

// MerchantSummaryTable renders the per-merchant scrap positions.
func MerchantSummaryTable(summaries []ledger.MerchantScrapSummary) TableView {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Merchant.Name,
			money(s.TotalDeliveryWeight),
			money(s.TotalReceiptWeight),
			money(s.WeightBalance),
		})
	}
	return TableView{
		Title:   "Merchant balances",
		Headers: []string{"Merchant", "Delivered (g)", "Received (g)", "Balance (g)"},
		Rows:    rows,
	}
}

// MerchantDetailTable renders one merchant's transaction history.
func MerchantDetailTable(merchantName string, transactions []ScrapView) TableView {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			t.Date,
			t.Type,
			t.Description,
			money(t.Weight),
			money(t.ManufacturingValue),
		})
	}
	return TableView{
		Title:   merchantName,
		Headers: []string{"Date", "Type", "Description", "Weight (g)", "Manufacturing value"},
		Rows:    rows,
	}
}
