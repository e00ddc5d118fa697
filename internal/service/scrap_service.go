package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
)

type MerchantRequest struct {
	Name string `json:"name"`
}

type ScrapRequest struct {
	MerchantID         model.FlexID `json:"merchantId"`
	Date               string       `json:"date"`
	Type               string       `json:"type"`
	Description        string       `json:"description"`
	Weight             model.Amount `json:"weight"`
	ManufacturingValue model.Amount `json:"manufacturingValue"`
}

// ScrapView is a transaction with the merchant name resolved for display.
type ScrapView struct {
	model.ScrapTransaction
	MerchantName string `json:"merchant_name"`
}

// ScrapService manages the scrap-gold exchange book: the merchant registry
// and the delivery/receipt transactions against each merchant.
type ScrapService interface {
	Merchants() []model.Merchant
	AddMerchant(req MerchantRequest) (model.Merchant, error)
	DeleteMerchant(id string) error

	ListTransactions(merchantID, search string) []ScrapView
	CreateTransaction(req ScrapRequest) (model.ScrapTransaction, error)
	UpdateTransaction(id string, req ScrapRequest) (model.ScrapTransaction, error)
	DeleteTransaction(id string) error

	MerchantSummary(search string) []ledger.MerchantScrapSummary
}

type scrapService struct {
	repo     repository.LedgerRepository
	notifier *Notifier
}

func NewScrapService(repo repository.LedgerRepository, notifier *Notifier) ScrapService {
	return &scrapService{repo: repo, notifier: notifier}
}

// --- Merchants ---

func (s *scrapService) Merchants() []model.Merchant {
	return s.repo.Merchants()
}

func (s *scrapService) AddMerchant(req MerchantRequest) (model.Merchant, error) {
	if req.Name == "" {
		return model.Merchant{}, fmt.Errorf("merchant name is required")
	}
	merchant := model.Merchant{
		ID:   model.FlexID(uuid.NewString()),
		Name: req.Name,
	}
	merchants := append(s.repo.Merchants(), merchant)
	if err := s.repo.SaveMerchants(merchants); err != nil {
		return model.Merchant{}, err
	}
	return merchant, nil
}

// DeleteMerchant removes the merchant and every transaction recorded against
// it, so the summary never carries orphaned rows.
func (s *scrapService) DeleteMerchant(id string) error {
	merchants := s.repo.Merchants()
	kept := make([]model.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if m.ID.String() != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(merchants) {
		return ErrNotFound
	}
	if err := s.repo.SaveMerchants(kept); err != nil {
		return err
	}

	transactions := s.repo.ScrapTransactions()
	remaining := make([]model.ScrapTransaction, 0, len(transactions))
	for _, t := range transactions {
		if t.MerchantID.String() != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) != len(transactions) {
		if err := s.repo.SaveScrapTransactions(remaining); err != nil {
			return err
		}
	}
	s.notifier.PublishSnapshot()
	return nil
}

// --- Transactions ---

func (s *scrapService) ListTransactions(merchantID, search string) []ScrapView {
	merchants := s.repo.Merchants()
	transactions := s.repo.ScrapTransactions()
	out := make([]ScrapView, 0, len(transactions))
	for _, t := range transactions {
		if merchantID != "" && t.MerchantID.String() != merchantID {
			continue
		}
		if search != "" && !containsFold(t.Description, search) && !containsFold(t.Date, search) {
			continue
		}
		out = append(out, ScrapView{
			ScrapTransaction: t,
			MerchantName:     ledger.MerchantName(merchants, t.MerchantID),
		})
	}
	return out
}

func (s *scrapService) buildTransaction(req ScrapRequest) (model.ScrapTransaction, error) {
	if req.MerchantID == "" {
		return model.ScrapTransaction{}, fmt.Errorf("merchantId is required")
	}
	if !model.ValidScrapType(req.Type) {
		return model.ScrapTransaction{}, fmt.Errorf("type must be %q or %q", model.ScrapDelivery, model.ScrapReceipt)
	}
	if req.Weight.Decimal.Cmp(decimal.Zero) <= 0 {
		return model.ScrapTransaction{}, fmt.Errorf("weight must be greater than zero")
	}
	return model.ScrapTransaction{
		MerchantID:         req.MerchantID,
		Date:               dateOrToday(req.Date),
		Type:               req.Type,
		Description:        req.Description,
		Weight:             req.Weight,
		ManufacturingValue: req.ManufacturingValue,
	}, nil
}

func (s *scrapService) CreateTransaction(req ScrapRequest) (model.ScrapTransaction, error) {
	transaction, err := s.buildTransaction(req)
	if err != nil {
		return model.ScrapTransaction{}, err
	}
	transaction.ID = model.FlexID(uuid.NewString())

	transactions := append(s.repo.ScrapTransactions(), transaction)
	if err := s.repo.SaveScrapTransactions(transactions); err != nil {
		return model.ScrapTransaction{}, err
	}
	s.notifier.PublishSnapshot()
	return transaction, nil
}

func (s *scrapService) UpdateTransaction(id string, req ScrapRequest) (model.ScrapTransaction, error) {
	transaction, err := s.buildTransaction(req)
	if err != nil {
		return model.ScrapTransaction{}, err
	}
	transactions := s.repo.ScrapTransactions()
	idx := -1
	for i := range transactions {
		if transactions[i].ID.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ScrapTransaction{}, ErrNotFound
	}
	transaction.ID = transactions[idx].ID
	transactions[idx] = transaction
	if err := s.repo.SaveScrapTransactions(transactions); err != nil {
		return model.ScrapTransaction{}, err
	}
	s.notifier.PublishSnapshot()
	return transaction, nil
}

func (s *scrapService) DeleteTransaction(id string) error {
	transactions := s.repo.ScrapTransactions()
	kept := make([]model.ScrapTransaction, 0, len(transactions))
	for _, t := range transactions {
		if t.ID.String() != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(transactions) {
		return ErrNotFound
	}
	if err := s.repo.SaveScrapTransactions(kept); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}

func (s *scrapService) MerchantSummary(search string) []ledger.MerchantScrapSummary {
	summaries := ledger.ComputeMerchantScrapSummary(s.repo.Merchants(), s.repo.ScrapTransactions())
	if search == "" {
		return summaries
	}
	out := make([]ledger.MerchantScrapSummary, 0, len(summaries))
	for _, sum := range summaries {
		if containsFold(sum.Merchant.Name, search) {
			out = append(out, sum)
		}
	}
	return out
}
