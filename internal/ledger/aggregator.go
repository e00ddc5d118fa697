// Package ledger holds the pure balance and reconciliation computations.
// Everything here is a stateless fold over in-memory record lists: same
// inputs, same outputs, safe to recompute on every read. Nothing in this
// package touches storage.
package ledger

import (
	"github.com/shopspring/decimal"

	"backend/internal/model"
)

// DailyTotals are the headline billed sums shown on the dashboard.
type DailyTotals struct {
	SalesTotal    model.Amount `json:"sales_total"`
	PurchaseTotal model.Amount `json:"purchase_total"`
	ExpenseTotal  model.Amount `json:"expense_total"`
}

// CashFlow is the reconciled cash position. New debt principal counts as cash
// in (borrowing brings money into the drawer); debt payments count as cash
// out.
type CashFlow struct {
	TotalCashIn        model.Amount `json:"total_cash_in"`
	TotalCashOut       model.Amount `json:"total_cash_out"`
	NetCashFlow        model.Amount `json:"net_cash_flow"`
	ClosingCashBalance model.Amount `json:"closing_cash_balance"`

	CashInFromNewDebts     model.Amount `json:"cash_in_from_new_debts"`
	CashOutForDebtPayments model.Amount `json:"cash_out_for_debt_payments"`
}

// GoldBalance is the reconciled gold-weight position in raw grams. Karat
// grades are not normalized: a gram of 18k counts the same as a gram of 24k,
// matching how the shop has always run its stock count.
type GoldBalance struct {
	EndingNewGoldBalance   model.Amount `json:"ending_new_gold_balance"`
	EndingOldGoldBalance   model.Amount `json:"ending_old_gold_balance"`
	EndingTotalGoldBalance model.Amount `json:"ending_total_gold_balance"`

	TotalDeliveredToMerchants  model.Amount `json:"total_delivered_to_merchants"`
	TotalReceivedFromMerchants model.Amount `json:"total_received_from_merchants"`
}

// CustomerDebt is one customer's running position over the sales ledger.
// Name is the join key; balance = billed - paid across every entry, including
// payment-only ones.
type CustomerDebt struct {
	CustomerName string       `json:"customer_name"`
	Phone        string       `json:"phone"`
	TotalBilled  model.Amount `json:"total_billed"`
	TotalPaid    model.Amount `json:"total_paid"`
	Balance      model.Amount `json:"balance"`
}

// DebtSummary is a financial debt with its derived totals attached.
type DebtSummary struct {
	model.FinancialDebt
	TotalPaid model.Amount `json:"totalPaid"`
	Balance   model.Amount `json:"balance"`
}

// MerchantScrapSummary is one merchant's scrap-weight position. Balance is
// received minus delivered, so a negative balance means the merchant still
// holds shop gold.
type MerchantScrapSummary struct {
	Merchant            model.Merchant `json:"merchant"`
	TotalDeliveryWeight model.Amount   `json:"total_delivery_weight"`
	TotalReceiptWeight  model.Amount   `json:"total_receipt_weight"`
	WeightBalance       model.Amount   `json:"weight_balance"`
}

// settleEpsilon hides balances that only differ from zero by rounding dust.
var settleEpsilon = decimal.New(1, -2) // 0.01

// ComputeDailyTotals sums billed amounts over the given record lists.
func ComputeDailyTotals(sales []model.SaleEntry, purchases []model.PurchaseEntry, expenses []model.ExpenseEntry) DailyTotals {
	salesTotal, purchaseTotal, expenseTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, s := range sales {
		salesTotal = salesTotal.Add(s.FinalPrice.Decimal)
	}
	for _, p := range purchases {
		purchaseTotal = purchaseTotal.Add(p.Cost.Decimal)
	}
	for _, e := range expenses {
		expenseTotal = expenseTotal.Add(e.Amount.Decimal)
	}
	return DailyTotals{
		SalesTotal:    model.NewAmount(salesTotal),
		PurchaseTotal: model.NewAmount(purchaseTotal),
		ExpenseTotal:  model.NewAmount(expenseTotal),
	}
}

// ComputeCashFlow folds collected payments, expenses and debt movements into
// the closing cash balance for the period.
func ComputeCashFlow(sales []model.SaleEntry, purchases []model.PurchaseEntry, expenses []model.ExpenseEntry, debts []model.FinancialDebt, openingCash decimal.Decimal) CashFlow {
	cashIn := decimal.Zero
	for _, s := range sales {
		cashIn = cashIn.Add(s.AmountPaid.Decimal)
	}
	newDebtPrincipal := decimal.Zero
	debtPayments := decimal.Zero
	for _, d := range debts {
		newDebtPrincipal = newDebtPrincipal.Add(d.InitialAmount.Decimal)
		for _, p := range d.Payments {
			debtPayments = debtPayments.Add(p.Amount.Decimal)
		}
	}
	cashIn = cashIn.Add(newDebtPrincipal)

	cashOut := debtPayments
	for _, p := range purchases {
		cashOut = cashOut.Add(p.AmountPaid.Decimal)
	}
	for _, e := range expenses {
		cashOut = cashOut.Add(e.Amount.Decimal)
	}

	net := cashIn.Sub(cashOut)
	return CashFlow{
		TotalCashIn:            model.NewAmount(cashIn),
		TotalCashOut:           model.NewAmount(cashOut),
		NetCashFlow:            model.NewAmount(net),
		ClosingCashBalance:     model.NewAmount(openingCash.Add(net)),
		CashInFromNewDebts:     model.NewAmount(newDebtPrincipal),
		CashOutForDebtPayments: model.NewAmount(debtPayments),
	}
}

// ComputeGoldBalance folds purchases, sales and scrap movement into the
// ending stock weights. Finished-jewelry stock grows on purchase and shrinks
// on sale; scrap stock grows on receipt and purchased used gold, shrinks on
// delivery.
func ComputeGoldBalance(sales []model.SaleEntry, purchases []model.PurchaseEntry, scraps []model.ScrapTransaction, opening model.OpeningBalances) GoldBalance {
	salesWeight, purchaseWeight := decimal.Zero, decimal.Zero
	for _, s := range sales {
		salesWeight = salesWeight.Add(s.Weight.Decimal)
	}
	for _, p := range purchases {
		purchaseWeight = purchaseWeight.Add(p.Weight.Decimal)
	}

	delivered, received := decimal.Zero, decimal.Zero
	for _, t := range scraps {
		switch t.Type {
		case model.ScrapDelivery:
			delivered = delivered.Add(t.Weight.Decimal)
		case model.ScrapReceipt:
			received = received.Add(t.Weight.Decimal)
		}
	}

	newGold := opening.OpeningNewGoldBalance.Decimal.Add(purchaseWeight).Sub(salesWeight)
	oldGold := opening.OpeningOldGoldBalance.Decimal.
		Add(opening.PurchasedUsedGold.Decimal).
		Add(received).
		Sub(delivered)

	return GoldBalance{
		EndingNewGoldBalance:       model.NewAmount(newGold),
		EndingOldGoldBalance:       model.NewAmount(oldGold),
		EndingTotalGoldBalance:     model.NewAmount(newGold.Add(oldGold)),
		TotalDeliveredToMerchants:  model.NewAmount(delivered),
		TotalReceivedFromMerchants: model.NewAmount(received),
	}
}

// ComputeCustomerDebts groups the sales ledger by exact customer name and
// returns customers still owing more than the rounding epsilon, in first-seen
// order. Entries without a customer name are skipped. The phone kept is the
// first non-empty one recorded for the customer.
func ComputeCustomerDebts(sales []model.SaleEntry) []CustomerDebt {
	type bucket struct {
		billed decimal.Decimal
		paid   decimal.Decimal
		phone  string
	}
	order := make([]string, 0)
	byName := make(map[string]*bucket)
	for _, ev := range EventsFromSales(sales) {
		if ev.CustomerName == "" {
			continue
		}
		b, ok := byName[ev.CustomerName]
		if !ok {
			b = &bucket{billed: decimal.Zero, paid: decimal.Zero}
			byName[ev.CustomerName] = b
			order = append(order, ev.CustomerName)
		}
		b.billed = b.billed.Add(ev.Billed)
		b.paid = b.paid.Add(ev.Paid)
		if b.phone == "" {
			b.phone = ev.CustomerPhone
		}
	}

	debts := make([]CustomerDebt, 0, len(order))
	for _, name := range order {
		b := byName[name]
		balance := b.billed.Sub(b.paid)
		if balance.Cmp(settleEpsilon) <= 0 {
			continue
		}
		debts = append(debts, CustomerDebt{
			CustomerName: name,
			Phone:        b.phone,
			TotalBilled:  model.NewAmount(b.billed),
			TotalPaid:    model.NewAmount(b.paid),
			Balance:      model.NewAmount(balance),
		})
	}
	return debts
}

// CustomerTransactions returns a customer's full audit trail, billings and
// payment-only entries alike, in ledger order.
func CustomerTransactions(sales []model.SaleEntry, customerName string) []model.SaleEntry {
	if customerName == "" {
		return nil
	}
	var out []model.SaleEntry
	for _, s := range sales {
		if s.CustomerName == customerName {
			out = append(out, s)
		}
	}
	return out
}

// ComputeFinancialDebtSummary attaches derived totals to every debt,
// including settled ones, for historical lookup.
func ComputeFinancialDebtSummary(debts []model.FinancialDebt) []DebtSummary {
	out := make([]DebtSummary, 0, len(debts))
	for _, d := range debts {
		paid := TotalPaid(d)
		out = append(out, DebtSummary{
			FinancialDebt: d,
			TotalPaid:     model.NewAmount(paid),
			Balance:       model.NewAmount(d.InitialAmount.Decimal.Sub(paid)),
		})
	}
	return out
}

// ActiveDebts filters a summary list down to debts not yet settled.
func ActiveDebts(summaries []DebtSummary) []DebtSummary {
	out := make([]DebtSummary, 0, len(summaries))
	for _, s := range summaries {
		if IsSettled(s.FinancialDebt) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TotalDebtBalance sums the outstanding balances of the given summaries.
func TotalDebtBalance(summaries []DebtSummary) model.Amount {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.Balance.Decimal)
	}
	return model.NewAmount(total)
}

// ComputeMerchantScrapSummary folds scrap transactions into per-merchant
// weight positions. Transactions pointing at a missing merchant are ignored
// here; detail views label them via MerchantName instead of failing.
func ComputeMerchantScrapSummary(merchants []model.Merchant, scraps []model.ScrapTransaction) []MerchantScrapSummary {
	out := make([]MerchantScrapSummary, 0, len(merchants))
	for _, m := range merchants {
		delivered, received := decimal.Zero, decimal.Zero
		for _, t := range scraps {
			if t.MerchantID != m.ID {
				continue
			}
			switch t.Type {
			case model.ScrapDelivery:
				delivered = delivered.Add(t.Weight.Decimal)
			case model.ScrapReceipt:
				received = received.Add(t.Weight.Decimal)
			}
		}
		out = append(out, MerchantScrapSummary{
			Merchant:            m,
			TotalDeliveryWeight: model.NewAmount(delivered),
			TotalReceiptWeight:  model.NewAmount(received),
			WeightBalance:       model.NewAmount(received.Sub(delivered)),
		})
	}
	return out
}

// MerchantName resolves a merchant id for display, falling back to the
// unknown-merchant sentinel instead of erroring on a dangling reference.
func MerchantName(merchants []model.Merchant, id model.FlexID) string {
	for _, m := range merchants {
		if m.ID == id {
			return m.Name
		}
	}
	return model.UnknownMerchantName
}

// SalesWeight sums sale entry weights in raw grams.
func SalesWeight(sales []model.SaleEntry) model.Amount {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Weight.Decimal)
	}
	return model.NewAmount(total)
}

// PurchasesWeight sums purchase entry weights in raw grams.
func PurchasesWeight(purchases []model.PurchaseEntry) model.Amount {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Weight.Decimal)
	}
	return model.NewAmount(total)
}
