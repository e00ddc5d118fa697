package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
)

func TestEventClassification(t *testing.T) {
	sales := []model.SaleEntry{
		{ID: "s1", CustomerName: "Mona", FinalPrice: amt(1000), AmountPaid: amt(400)},
		{ID: "p1", CustomerName: "Mona", FinalPrice: amt(0), AmountPaid: amt(600)},
	}

	events := EventsFromSales(sales)

	require.Len(t, events, 2)
	assert.Equal(t, EventBilling, events[0].Kind)
	assert.Equal(t, "1000", events[0].Billed.String())
	assert.Equal(t, EventPayment, events[1].Kind)
	assert.Equal(t, "600", events[1].Paid.String())
	assert.True(t, events[1].Billed.IsZero())
}

func TestZeroAmountEntryIsBilling(t *testing.T) {
	// An all-zero row is a degenerate billing, not a payment.
	ev := EventFromSale(model.SaleEntry{ID: "s1", CustomerName: "Ali"})
	assert.Equal(t, EventBilling, ev.Kind)
}
