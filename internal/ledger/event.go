package ledger

import (
	"github.com/shopspring/decimal"

	"backend/internal/model"
)

// EventKind tags a ledger event as a billing or a collection.
type EventKind string

const (
	EventBilling EventKind = "billing"
	EventPayment EventKind = "payment"
)

// Event is the explicit form of a sales-ledger row. The persisted shape
// overloads SaleEntry for both billings and collections (a zero finalPrice
// with a non-zero amountPaid is a collection); Event makes that distinction a
// tagged variant so downstream code never tests prices to learn intent.
type Event struct {
	Kind          EventKind       `json:"kind"`
	EntryID       model.FlexID    `json:"entry_id"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Billed        decimal.Decimal `json:"billed"`
	Paid          decimal.Decimal `json:"paid"`
}

// EventFromSale classifies one persisted entry.
func EventFromSale(s model.SaleEntry) Event {
	kind := EventBilling
	if s.IsPayment() {
		kind = EventPayment
	}
	return Event{
		Kind:          kind,
		EntryID:       s.ID,
		Date:          s.Date,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Billed:        s.FinalPrice.Decimal,
		Paid:          s.AmountPaid.Decimal,
	}
}

// EventsFromSales classifies a whole ledger in order.
func EventsFromSales(sales []model.SaleEntry) []Event {
	out := make([]Event, 0, len(sales))
	for _, s := range sales {
		out = append(out, EventFromSale(s))
	}
	return out
}
