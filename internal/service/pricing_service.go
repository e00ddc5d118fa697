package service

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"backend/internal/model"
	"backend/internal/repository"
)

// Quote is one priced-out piece: the 21k base price scaled to the requested
// karat, plus manufacturing and VAT.
type Quote struct {
	Weight             model.Amount `json:"weight"`
	Karat              string       `json:"karat"`
	PricePerGram       model.Amount `json:"price_per_gram"`
	BasePrice          model.Amount `json:"base_price"`
	ManufacturingCost  model.Amount `json:"manufacturing_cost"`
	VATAmount          model.Amount `json:"vat_amount"`
	TotalPrice         model.Amount `json:"total_price"`
}

type QuoteRequest struct {
	Weight model.Amount `json:"weight"`
	Karat  string       `json:"karat"`
}

type QuickSaleRequest struct {
	Weight        model.Amount `json:"weight"`
	Karat         string       `json:"karat"`
	Description   string       `json:"description"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
}

// PricingService holds the shop's price sheet and turns it into customer
// quotes. QuickSale books a quoted piece straight onto the sales ledger.
type PricingService interface {
	Config() model.PricingConfig
	UpdateConfig(cfg model.PricingConfig) (model.PricingConfig, error)
	Quote(req QuoteRequest) (Quote, error)
	QuickSale(req QuickSaleRequest) (model.SaleEntry, error)
}

type pricingService struct {
	repo    repository.LedgerRepository
	entries EntryService
}

func NewPricingService(repo repository.LedgerRepository, entries EntryService) PricingService {
	return &pricingService{repo: repo, entries: entries}
}

func (s *pricingService) Config() model.PricingConfig {
	return s.repo.Pricing()
}

func (s *pricingService) UpdateConfig(cfg model.PricingConfig) (model.PricingConfig, error) {
	if cfg.GoldPricePerGram.Decimal.Cmp(decimal.Zero) < 0 ||
		cfg.ManufacturingCostPerGram.Decimal.Cmp(decimal.Zero) < 0 ||
		cfg.VATPercentage.Decimal.Cmp(decimal.Zero) < 0 {
		return model.PricingConfig{}, fmt.Errorf("pricing values must not be negative")
	}
	if err := s.repo.SavePricing(cfg); err != nil {
		return model.PricingConfig{}, err
	}
	return cfg, nil
}

// karatPrice scales the stored 21k price to the requested grade.
func karatPrice(price21 decimal.Decimal, karat string) (decimal.Decimal, error) {
	k, err := strconv.ParseInt(karat, 10, 64)
	if err != nil || !model.ValidKarat(karat) {
		return decimal.Zero, fmt.Errorf("karat must be one of 18, 21, 22, 24")
	}
	return price21.Mul(decimal.NewFromInt(k)).Div(decimal.NewFromInt(21)), nil
}

func (s *pricingService) Quote(req QuoteRequest) (Quote, error) {
	if req.Weight.Decimal.Cmp(decimal.Zero) <= 0 {
		return Quote{}, fmt.Errorf("weight must be greater than zero")
	}
	cfg := s.repo.Pricing()
	perGram, err := karatPrice(cfg.GoldPricePerGram.Decimal, req.Karat)
	if err != nil {
		return Quote{}, err
	}
	base := req.Weight.Decimal.Mul(perGram)
	manufacturing := req.Weight.Decimal.Mul(cfg.ManufacturingCostPerGram.Decimal)
	vat := base.Mul(cfg.VATPercentage.Decimal).Div(decimal.NewFromInt(100))

	return Quote{
		Weight:            req.Weight,
		Karat:             req.Karat,
		PricePerGram:      model.NewAmount(perGram),
		BasePrice:         model.NewAmount(base),
		ManufacturingCost: model.NewAmount(manufacturing),
		VATAmount:         model.NewAmount(vat),
		TotalPrice:        model.NewAmount(base.Add(manufacturing).Add(vat)),
	}, nil
}

// QuickSale quotes the piece and books it as a fully paid sale.
func (s *pricingService) QuickSale(req QuickSaleRequest) (model.SaleEntry, error) {
	quote, err := s.Quote(QuoteRequest{Weight: req.Weight, Karat: req.Karat})
	if err != nil {
		return model.SaleEntry{}, err
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Quick sale %sg %sk", req.Weight.String(), req.Karat)
	}
	return s.entries.CreateSale(SaleRequest{
		Description:   description,
		Weight:        req.Weight,
		Karat:         req.Karat,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		FinalPrice:    quote.TotalPrice,
	})
}
