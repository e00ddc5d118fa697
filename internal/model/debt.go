package model

// Payment is one installment against a financial debt. The payments list is
// append-only; history is kept even after the debt settles.
type Payment struct {
	ID     FlexID `json:"id"`
	Amount Amount `json:"amount"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

// EntryDate returns the raw persisted date string for period filtering.
func (p Payment) EntryDate() string { return p.Date }

// FinancialDebt is a non-gold monetary obligation owed by the shop to a
// supplier or creditor. The outstanding balance is always derived from
// initialAmount minus the payment history, never stored.
type FinancialDebt struct {
	ID            FlexID    `json:"id"`
	SupplierName  string    `json:"supplierName"`
	SupplierPhone string    `json:"supplierPhone"`
	InitialAmount Amount    `json:"initialAmount"`
	Notes         string    `json:"notes"`
	Date          string    `json:"date"`
	Payments      []Payment `json:"payments"`
}

// EntryDate returns the raw persisted date string for period filtering.
func (d FinancialDebt) EntryDate() string { return d.Date }
