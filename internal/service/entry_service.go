package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
)

// ErrNotFound is returned when an id does not match any record in the
// owning collection.
var ErrNotFound = errors.New("record not found")

// EntryFilter narrows a ledger listing: free-text search plus an optional
// reporting period.
type EntryFilter struct {
	Search string
	Period ledger.Period
	Start  string
	End    string
}

func (f EntryFilter) predicate() ledger.DatePredicate {
	period := f.Period
	if period == "" {
		period = ledger.PeriodAll
	}
	return period.Predicate(time.Now(), f.Start, f.End)
}

// --- DTOs ---

type SaleRequest struct {
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	Weight        model.Amount  `json:"weight"`
	Karat         string        `json:"karat"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	FinalPrice    model.Amount  `json:"finalPrice"`
	AmountPaid    *model.Amount `json:"amountPaid"`
}

type PurchaseRequest struct {
	Date         string        `json:"date"`
	Description  string        `json:"description"`
	Weight       model.Amount  `json:"weight"`
	Cost         model.Amount  `json:"cost"`
	AmountPaid   *model.Amount `json:"amountPaid"`
	SupplierName string        `json:"supplierName"`
}

type ExpenseRequest struct {
	Date     string       `json:"date"`
	Category string       `json:"category"`
	Amount   model.Amount `json:"amount"`
	Note     string       `json:"note"`
}

// --- Interface ---

// EntryService owns the three daily ledgers behind the dashboard: sales,
// purchases and expenses. Every mutation validates first, replaces the
// owning collection wholesale, then broadcasts a fresh snapshot.
type EntryService interface {
	ListSales(f EntryFilter) []model.SaleEntry
	CreateSale(req SaleRequest) (model.SaleEntry, error)
	UpdateSale(id string, req SaleRequest) (model.SaleEntry, error)
	DeleteSale(id string) error
	ClearSales() error

	ListPurchases(f EntryFilter) []model.PurchaseEntry
	CreatePurchase(req PurchaseRequest) (model.PurchaseEntry, error)
	UpdatePurchase(id string, req PurchaseRequest) (model.PurchaseEntry, error)
	DeletePurchase(id string) error
	ClearPurchases() error

	ListExpenses(f EntryFilter) []model.ExpenseEntry
	CreateExpense(req ExpenseRequest) (model.ExpenseEntry, error)
	UpdateExpense(id string, req ExpenseRequest) (model.ExpenseEntry, error)
	DeleteExpense(id string) error
	ClearExpenses() error

	DailyTotals() ledger.DailyTotals
}

type entryService struct {
	repo     repository.LedgerRepository
	notifier *Notifier
}

func NewEntryService(repo repository.LedgerRepository, notifier *Notifier) EntryService {
	return &entryService{repo: repo, notifier: notifier}
}

// --- Sales ---

func (s *entryService) ListSales(f EntryFilter) []model.SaleEntry {
	entries := ledger.FilterByPeriod(s.repo.Sales(), f.predicate())
	if f.Search == "" {
		return entries
	}
	out := make([]model.SaleEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(e.Description, f.Search) ||
			containsFold(e.Date, f.Search) ||
			containsFold(e.CustomerName, f.Search) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entryService) buildSale(req SaleRequest) (model.SaleEntry, error) {
	if req.Description == "" {
		return model.SaleEntry{}, fmt.Errorf("description is required")
	}
	// Payment-on-account rows live in the sales ledger with zero weight and
	// zero price; only the collected amount is validated so a mistyped
	// payment can still be corrected in place.
	if req.Weight.IsZero() && req.FinalPrice.IsZero() {
		if req.AmountPaid == nil || req.AmountPaid.Decimal.Cmp(decimal.Zero) <= 0 {
			return model.SaleEntry{}, fmt.Errorf("amountPaid must be greater than zero")
		}
		if req.CustomerName == "" {
			return model.SaleEntry{}, fmt.Errorf("customerName is required")
		}
		return model.SaleEntry{
			Date:          dateOrToday(req.Date),
			Description:   req.Description,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			AmountPaid:    *req.AmountPaid,
		}, nil
	}
	if req.Weight.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.SaleEntry{}, fmt.Errorf("weight must be greater than zero")
	}
	if req.FinalPrice.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.SaleEntry{}, fmt.Errorf("finalPrice must be greater than zero")
	}
	karat := req.Karat
	if karat == "" {
		karat = model.Karat21
	}
	if !model.ValidKarat(karat) {
		return model.SaleEntry{}, fmt.Errorf("karat must be one of 18, 21, 22, 24")
	}
	// A missing amountPaid means paid in full; an explicit zero is a sale
	// fully on credit.
	amountPaid := req.FinalPrice
	if req.AmountPaid != nil {
		amountPaid = *req.AmountPaid
	}
	return model.SaleEntry{
		Date:          dateOrToday(req.Date),
		Description:   req.Description,
		Weight:        req.Weight,
		Karat:         karat,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		FinalPrice:    req.FinalPrice,
		AmountPaid:    amountPaid,
	}, nil
}

func (s *entryService) CreateSale(req SaleRequest) (model.SaleEntry, error) {
	entry, err := s.buildSale(req)
	if err != nil {
		return model.SaleEntry{}, err
	}
	entry.ID = model.FlexID(uuid.NewString())

	entries := append(s.repo.Sales(), entry)
	if err := s.repo.SaveSales(entries); err != nil {
		return model.SaleEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) UpdateSale(id string, req SaleRequest) (model.SaleEntry, error) {
	entry, err := s.buildSale(req)
	if err != nil {
		return model.SaleEntry{}, err
	}
	entries := s.repo.Sales()
	idx := -1
	for i := range entries {
		if entries[i].ID.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.SaleEntry{}, ErrNotFound
	}
	entry.ID = entries[idx].ID
	entries[idx] = entry
	if err := s.repo.SaveSales(entries); err != nil {
		return model.SaleEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) DeleteSale(id string) error {
	entries := s.repo.Sales()
	kept := make([]model.SaleEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID.String() != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}
	if err := s.repo.SaveSales(kept); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *entryService) ClearSales() error {
	if err := s.repo.SaveSales([]model.SaleEntry{}); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

// --- Purchases ---

func (s *entryService) ListPurchases(f EntryFilter) []model.PurchaseEntry {
	entries := ledger.FilterByPeriod(s.repo.Purchases(), f.predicate())
	if f.Search == "" {
		return entries
	}
	out := make([]model.PurchaseEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(e.Description, f.Search) ||
			containsFold(e.Date, f.Search) ||
			containsFold(e.SupplierName, f.Search) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entryService) buildPurchase(req PurchaseRequest) (model.PurchaseEntry, error) {
	if req.Description == "" {
		return model.PurchaseEntry{}, fmt.Errorf("description is required")
	}
	if req.Weight.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.PurchaseEntry{}, fmt.Errorf("weight must be greater than zero")
	}
	if req.Cost.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.PurchaseEntry{}, fmt.Errorf("cost must be greater than zero")
	}
	// A missing amountPaid means paid in full; an explicit zero is a
	// purchase fully on credit.
	amountPaid := req.Cost
	if req.AmountPaid != nil {
		amountPaid = *req.AmountPaid
	}
	return model.PurchaseEntry{
		Date:         dateOrToday(req.Date),
		Description:  req.Description,
		Weight:       req.Weight,
		Cost:         req.Cost,
		AmountPaid:   amountPaid,
		SupplierName: req.SupplierName,
	}, nil
}

func (s *entryService) CreatePurchase(req PurchaseRequest) (model.PurchaseEntry, error) {
	entry, err := s.buildPurchase(req)
	if err != nil {
		return model.PurchaseEntry{}, err
	}
	entry.ID = model.FlexID(uuid.NewString())

	entries := append(s.repo.Purchases(), entry)
	if err := s.repo.SavePurchases(entries); err != nil {
		return model.PurchaseEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) UpdatePurchase(id string, req PurchaseRequest) (model.PurchaseEntry, error) {
	entry, err := s.buildPurchase(req)
	if err != nil {
		return model.PurchaseEntry{}, err
	}
	entries := s.repo.Purchases()
	idx := -1
	for i := range entries {
		if entries[i].ID.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.PurchaseEntry{}, ErrNotFound
	}
	entry.ID = entries[idx].ID
	entries[idx] = entry
	if err := s.repo.SavePurchases(entries); err != nil {
		return model.PurchaseEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) DeletePurchase(id string) error {
	entries := s.repo.Purchases()
	kept := make([]model.PurchaseEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID.String() != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}
	if err := s.repo.SavePurchases(kept); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *entryService) ClearPurchases() error {
	if err := s.repo.SavePurchases([]model.PurchaseEntry{}); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

// --- Expenses ---

func (s *entryService) ListExpenses(f EntryFilter) []model.ExpenseEntry {
	entries := ledger.FilterByPeriod(s.repo.Expenses(), f.predicate())
	if f.Search == "" {
		return entries
	}
	out := make([]model.ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(e.Category, f.Search) ||
			containsFold(e.Date, f.Search) ||
			containsFold(e.Note, f.Search) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entryService) buildExpense(req ExpenseRequest) (model.ExpenseEntry, error) {
	if req.Category == "" {
		return model.ExpenseEntry{}, fmt.Errorf("category is required")
	}
	if req.Amount.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.ExpenseEntry{}, fmt.Errorf("amount must be greater than zero")
	}
	return model.ExpenseEntry{
		Date:     dateOrToday(req.Date),
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	}, nil
}

func (s *entryService) CreateExpense(req ExpenseRequest) (model.ExpenseEntry, error) {
	entry, err := s.buildExpense(req)
	if err != nil {
		return model.ExpenseEntry{}, err
	}
	entry.ID = model.FlexID(uuid.NewString())

	entries := append(s.repo.Expenses(), entry)
	if err := s.repo.SaveExpenses(entries); err != nil {
		return model.ExpenseEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) UpdateExpense(id string, req ExpenseRequest) (model.ExpenseEntry, error) {
	entry, err := s.buildExpense(req)
	if err != nil {
		return model.ExpenseEntry{}, err
	}
	entries := s.repo.Expenses()
	idx := -1
	for i := range entries {
		if entries[i].ID.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ExpenseEntry{}, ErrNotFound
	}
	entry.ID = entries[idx].ID
	entries[idx] = entry
	if err := s.repo.SaveExpenses(entries); err != nil {
		return model.ExpenseEntry{}, err
	}
	s.notifier.PublishSnapshot()
	return entry, nil
}

func (s *entryService) DeleteExpense(id string) error {
	entries := s.repo.Expenses()
	kept := make([]model.ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID.String() != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}
	if err := s.repo.SaveExpenses(kept); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *entryService) ClearExpenses() error {
	if err := s.repo.SaveExpenses([]model.ExpenseEntry{}); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *entryService) DailyTotals() ledger.DailyTotals {
	return ledger.ComputeDailyTotals(s.repo.Sales(), s.repo.Purchases(), s.repo.Expenses())
}

// --- Helpers ---

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func dateOrToday(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}
