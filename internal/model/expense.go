package model

// ExpenseEntry is one row of the shop's expense ledger.
type ExpenseEntry struct {
	ID       FlexID `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Note     string `json:"note"`
}

// EntryDate returns the raw persisted date string for period filtering.
func (e ExpenseEntry) EntryDate() string { return e.Date }
