package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/whatsapp"
)

// CustomerDebtView is a customer balance row with its reminder link attached.
type CustomerDebtView struct {
	ledger.CustomerDebt
	WhatsAppLink string `json:"whatsapp_url,omitempty"`
}

// DebtView is a financial debt summary with its reminder link attached.
type DebtView struct {
	ledger.DebtSummary
	WhatsAppLink string `json:"whatsapp_url,omitempty"`
}

type CustomerPaymentRequest struct {
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Amount        model.Amount `json:"amount"`
	Notes         string       `json:"notes"`
}

type DebtRequest struct {
	SupplierName  string       `json:"supplierName"`
	SupplierPhone string       `json:"supplierPhone"`
	InitialAmount model.Amount `json:"initialAmount"`
	Notes         string       `json:"notes"`
	Date          string       `json:"date"`
}

type DebtPaymentRequest struct {
	Amount model.Amount `json:"amount"`
	Date   string       `json:"date"`
	Notes  string       `json:"notes"`
}

// DebtPaymentResult carries the updated debt plus a receipt link for the
// creditor.
type DebtPaymentResult struct {
	Debt        DebtView `json:"debt"`
	ReceiptLink string   `json:"receipt_link,omitempty"`
}

// DebtService covers both sides of the shop's credit book: customer balances
// derived from the sales ledger, and financial debts the shop owes suppliers
// and lenders.
type DebtService interface {
	CustomerDebts(search string) []CustomerDebtView
	CustomerTransactions(customerName string) []model.SaleEntry
	RecordCustomerPayment(req CustomerPaymentRequest) (model.SaleEntry, error)

	ListDebts(includeSettled bool) []DebtView
	GetDebt(id string) (DebtView, error)
	CreateDebt(req DebtRequest) (DebtView, error)
	DeleteDebt(id string) error
	AddDebtPayment(debtID string, req DebtPaymentRequest) (DebtPaymentResult, error)
	TotalDebtBalance() model.Amount
}

type debtService struct {
	repo     repository.LedgerRepository
	links    whatsapp.LinkBuilder
	notifier *Notifier
}

func NewDebtService(repo repository.LedgerRepository, links whatsapp.LinkBuilder, notifier *Notifier) DebtService {
	return &debtService{repo: repo, links: links, notifier: notifier}
}

// --- Customer debts ---

func (s *debtService) CustomerDebts(search string) []CustomerDebtView {
	debts := ledger.ComputeCustomerDebts(s.repo.Sales())
	out := make([]CustomerDebtView, 0, len(debts))
	for _, d := range debts {
		if search != "" && !containsFold(d.CustomerName, search) {
			continue
		}
		out = append(out, CustomerDebtView{
			CustomerDebt: d,
			WhatsAppLink: s.links.DebtReminder(d.Phone, d.CustomerName, d.Balance.String()),
		})
	}
	return out
}

func (s *debtService) CustomerTransactions(customerName string) []model.SaleEntry {
	return ledger.CustomerTransactions(s.repo.Sales(), customerName)
}

func (s *debtService) RecordCustomerPayment(req CustomerPaymentRequest) (model.SaleEntry, error) {
	entry, err := ledger.CustomerPaymentEntry(
		uuid.NewString(),
		time.Now().Format(time.RFC3339),
		req.CustomerName,
		req.CustomerPhone,
		req.Amount.Decimal,
		req.Notes,
	)
	if err != nil {
		return model.SaleEntry{}, err
	}
	entries := append(s.repo.Sales(), entry)
	if err := s.repo.SaveSales(entries); err != nil {
		return model.SaleEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

// --- Financial debts ---

func (s *debtService) view(summary ledger.DebtSummary) DebtView {
	return DebtView{
		DebtSummary:  summary,
		WhatsAppLink: s.links.CreditorReminder(summary.SupplierPhone, summary.SupplierName, summary.Balance.String()),
	}
}

func (s *debtService) ListDebts(includeSettled bool) []DebtView {
	summaries := ledger.ComputeFinancialDebtSummary(s.repo.FinancialDebts())
	if !includeSettled {
		summaries = ledger.ActiveDebts(summaries)
	}
	out := make([]DebtView, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, s.view(sum))
	}
	return out
}

func (s *debtService) GetDebt(id string) (DebtView, error) {
	for _, sum := range ledger.ComputeFinancialDebtSummary(s.repo.FinancialDebts()) {
		if sum.ID.String() == id {
			return s.view(sum), nil
		}
	}
	return DebtView{}, ErrNotFound
}

func (s *debtService) CreateDebt(req DebtRequest) (DebtView, error) {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	debt, err := ledger.NewDebt(
		uuid.NewString(),
		req.SupplierName,
		req.SupplierPhone,
		req.InitialAmount.Decimal,
		req.Notes,
		date,
	)
	if err != nil {
		return DebtView{}, err
	}
	debts := append(s.repo.FinancialDebts(), debt)
	if err := s.repo.SaveFinancialDebts(debts); err != nil {
		return DebtView{}, err
	}
	s.notifier.PublishSnapshot()
	return s.view(ledger.DebtSummary{
		FinancialDebt: debt,
		TotalPaid:     model.NewAmount(decimal.Zero),
		Balance:       debt.InitialAmount,
	}), nil
}

func (s *debtService) DeleteDebt(id string) error {
	debts := s.repo.FinancialDebts()
	kept := make([]model.FinancialDebt, 0, len(debts))
	for _, d := range debts {
		if d.ID.String() != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(debts) {
		return ErrNotFound
	}
	if err := s.repo.SaveFinancialDebts(kept); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *debtService) AddDebtPayment(debtID string, req DebtPaymentRequest) (DebtPaymentResult, error) {
	debts := s.repo.FinancialDebts()
	idx := -1
	for i := range debts {
		if debts[i].ID.String() == debtID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return DebtPaymentResult{}, ErrNotFound
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	updated, err := ledger.AddPayment(debts[idx], uuid.NewString(), req.Amount.Decimal, date, req.Notes)
	if err != nil {
		return DebtPaymentResult{}, err
	}
	debts[idx] = updated
	if err := s.repo.SaveFinancialDebts(debts); err != nil {
		return DebtPaymentResult{}, err
	}
	s.notifier.PublishSnapshot()

	remaining := ledger.Outstanding(updated)
	summary := ledger.DebtSummary{
		FinancialDebt: updated,
		TotalPaid:     model.NewAmount(ledger.TotalPaid(updated)),
		Balance:       model.NewAmount(remaining),
	}
	return DebtPaymentResult{
		Debt: s.view(summary),
		ReceiptLink: s.links.PaymentReceipt(
			updated.SupplierPhone,
			updated.SupplierName,
			req.Amount.String(),
			remaining.String(),
			req.Notes,
		),
	}, nil
}

func (s *debtService) TotalDebtBalance() model.Amount {
	return ledger.TotalDebtBalance(ledger.ComputeFinancialDebtSummary(s.repo.FinancialDebts()))
}
