package service

import (
	"time"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
)

// ReportSummary aggregates a filtered slice of the ledgers into the figures
// shown at the top of the reports page.
type ReportSummary struct {
	SalesTotal      model.Amount `json:"sales_total"`
	SalesWeight     model.Amount `json:"sales_weight"`
	PurchaseTotal   model.Amount `json:"purchase_total"`
	PurchaseWeight  model.Amount `json:"purchase_weight"`
	ExpenseTotal    model.Amount `json:"expense_total"`
	EstimatedProfit model.Amount `json:"estimated_profit"`
	NetGoldMovement model.Amount `json:"net_gold_movement"`
}

// Report bundles the summary with the underlying filtered records.
type Report struct {
	Summary   ReportSummary         `json:"summary"`
	Sales     []model.SaleEntry     `json:"sales"`
	Purchases []model.PurchaseEntry `json:"purchases"`
	Expenses  []model.ExpenseEntry  `json:"expenses"`
}

type ReportService interface {
	Generate(period ledger.Period, start, end string) Report
}

type reportService struct {
	repo repository.LedgerRepository
}

func NewReportService(repo repository.LedgerRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Generate(period ledger.Period, start, end string) Report {
	if period == "" {
		period = ledger.PeriodAll
	}
	pred := period.Predicate(time.Now(), start, end)

	sales := ledger.FilterByPeriod(s.repo.Sales(), pred)
	purchases := ledger.FilterByPeriod(s.repo.Purchases(), pred)
	expenses := ledger.FilterByPeriod(s.repo.Expenses(), pred)

	totals := ledger.ComputeDailyTotals(sales, purchases, expenses)
	salesWeight := ledger.SalesWeight(sales)
	purchaseWeight := ledger.PurchasesWeight(purchases)

	profit := totals.SalesTotal.Decimal.
		Sub(totals.PurchaseTotal.Decimal).
		Sub(totals.ExpenseTotal.Decimal)

	return Report{
		Summary: ReportSummary{
			SalesTotal:      totals.SalesTotal,
			SalesWeight:     salesWeight,
			PurchaseTotal:   totals.PurchaseTotal,
			PurchaseWeight:  purchaseWeight,
			ExpenseTotal:    totals.ExpenseTotal,
			EstimatedProfit: model.NewAmount(profit),
			NetGoldMovement: model.NewAmount(purchaseWeight.Decimal.Sub(salesWeight.Decimal)),
		},
		Sales:     sales,
		Purchases: purchases,
		Expenses:  expenses,
	}
}
