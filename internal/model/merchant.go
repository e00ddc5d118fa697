package model

// UnknownMerchantName labels scrap transactions whose merchant was deleted
// out from under them or never existed.
const UnknownMerchantName = "Unknown merchant"

// Merchant is a scrap-gold trading partner referenced by ScrapTransaction.
// Deleting a merchant cascades to all of its transactions.
type Merchant struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}
