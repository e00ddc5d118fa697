package model

import "encoding/json"

// Scrap transaction direction constants. Delivery hands gold to a merchant
// for refining; receipt takes gold back from one.
const (
	ScrapDelivery = "delivery"
	ScrapReceipt  = "receipt"
)

// Legacy persisted direction values (the original UI stored Arabic labels).
const (
	legacyScrapDelivery = "تسليم"
	legacyScrapReceipt  = "استلام"
)

// ValidScrapType reports whether t is a known transaction direction.
func ValidScrapType(t string) bool {
	return t == ScrapDelivery || t == ScrapReceipt
}

// ScrapTransaction records scrap gold moving between the shop and a merchant,
// tracked by weight only.
type ScrapTransaction struct {
	ID                 FlexID `json:"id"`
	MerchantID         FlexID `json:"merchantId"`
	Date               string `json:"date"`
	Type               string `json:"type"`
	Description        string `json:"description"`
	Weight             Amount `json:"weight"`
	ManufacturingValue Amount `json:"manufacturingValue"`
}

// UnmarshalJSON normalizes legacy direction labels to the canonical
// delivery/receipt values.
func (t *ScrapTransaction) UnmarshalJSON(data []byte) error {
	type alias ScrapTransaction
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	switch t.Type {
	case legacyScrapDelivery:
		t.Type = ScrapDelivery
	case legacyScrapReceipt:
		t.Type = ScrapReceipt
	}
	return nil
}

// EntryDate returns the raw persisted date string for period filtering.
func (t ScrapTransaction) EntryDate() string { return t.Date }
