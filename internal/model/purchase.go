package model

import "encoding/json"

// PurchaseEntry is one row of the daily purchases ledger: finished jewelry
// bought into stock.
type PurchaseEntry struct {
	ID           FlexID `json:"id"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Weight       Amount `json:"weight"`
	Cost         Amount `json:"cost"`
	AmountPaid   Amount `json:"amountPaid"`
	SupplierName string `json:"supplierName"`
}

// UnmarshalJSON backfills amountPaid with cost when absent, mirroring the
// sales ledger's full-payment convention for pre-partial-payment records.
func (p *PurchaseEntry) UnmarshalJSON(data []byte) error {
	type alias PurchaseEntry
	aux := struct {
		*alias
		AmountPaid *Amount `json:"amountPaid"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.AmountPaid != nil {
		p.AmountPaid = *aux.AmountPaid
	} else {
		p.AmountPaid = p.Cost
	}
	return nil
}

// EntryDate returns the raw persisted date string for period filtering.
func (p PurchaseEntry) EntryDate() string { return p.Date }
