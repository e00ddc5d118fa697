package model

// PricingConfig is the singleton daily pricing sheet. goldPricePerGram is
// quoted for the 21-karat reference grade; other grades scale linearly.
type PricingConfig struct {
	GoldPricePerGram         Amount `json:"goldPricePerGram"`
	ManufacturingCostPerGram Amount `json:"manufacturingCostPerGram"`
	VATPercentage            Amount `json:"vatPercentage"`
}

// OpeningBalances are the manually entered starting values for a
// reconciliation period. They are deliberately never rolled forward; the shop
// re-enters them at the start of each period.
type OpeningBalances struct {
	OpeningNewGoldBalance Amount `json:"openingNewGoldBalance"`
	OpeningOldGoldBalance Amount `json:"openingOldGoldBalance"`
	PurchasedUsedGold     Amount `json:"purchasedUsedGold"`
	OpeningCashBalance    Amount `json:"openingCashBalance"`
}
