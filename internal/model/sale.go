package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Karat purity grades sold by the shop. The grade affects pricing but not
// aggregate weight balances, which sum raw grams across grades.
const (
	Karat18 = "18"
	Karat21 = "21"
	Karat22 = "22"
	Karat24 = "24"
)

// ValidKarat reports whether k is one of the accepted purity grades.
func ValidKarat(k string) bool {
	switch k {
	case Karat18, Karat21, Karat22, Karat24:
		return true
	}
	return false
}

// SaleEntry is one row of the daily sales ledger. An entry with a zero
// finalPrice and a non-zero amountPaid is a payment collected against the
// customer's running balance, not a new billing.
type SaleEntry struct {
	ID            FlexID `json:"id"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Weight        Amount `json:"weight"`
	Karat         string `json:"karat"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	FinalPrice    Amount `json:"finalPrice"`
	AmountPaid    Amount `json:"amountPaid"`
}

// UnmarshalJSON backfills amountPaid with finalPrice when absent. Records
// written before partial payments existed carry no amountPaid field and mean
// "paid in full"; an explicit zero stays zero.
func (s *SaleEntry) UnmarshalJSON(data []byte) error {
	type alias SaleEntry
	aux := struct {
		*alias
		AmountPaid *Amount `json:"amountPaid"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.AmountPaid != nil {
		s.AmountPaid = *aux.AmountPaid
	} else {
		s.AmountPaid = s.FinalPrice
	}
	return nil
}

// IsPayment reports whether the entry only collects cash against earlier
// billings.
func (s SaleEntry) IsPayment() bool {
	return s.FinalPrice.IsZero() && !s.AmountPaid.IsZero()
}

// Outstanding is the unpaid remainder of this single entry. Negative when the
// customer overpaid (a credit).
func (s SaleEntry) Outstanding() decimal.Decimal {
	return s.FinalPrice.Decimal.Sub(s.AmountPaid.Decimal)
}

// EntryDate returns the raw persisted date string for period filtering.
func (s SaleEntry) EntryDate() string { return s.Date }
