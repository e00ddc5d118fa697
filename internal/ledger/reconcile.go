package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"backend/internal/model"
)

// Validation failures surfaced to the caller before any mutation is applied.
var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrMissingCreditor   = errors.New("supplier or creditor name is required")
	ErrMissingCustomer   = errors.New("customer name is required")
)

// TotalPaid sums a debt's payment history.
func TotalPaid(d model.FinancialDebt) decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount.Decimal)
	}
	return total
}

// Outstanding recomputes the debt balance from first principles on every
// call. The balance is never stored, so it cannot drift from the payment
// history.
func Outstanding(d model.FinancialDebt) decimal.Decimal {
	return d.InitialAmount.Decimal.Sub(TotalPaid(d))
}

// IsSettled reports whether the outstanding balance is within the rounding
// epsilon of zero. Settled debts drop out of active views but keep their
// payment history.
func IsSettled(d model.FinancialDebt) bool {
	return Outstanding(d).Cmp(settleEpsilon) <= 0
}

// NewDebt validates and builds a financial debt record. The id and date are
// supplied by the caller so this stays deterministic.
func NewDebt(id, supplierName, supplierPhone string, initialAmount decimal.Decimal, notes, date string) (model.FinancialDebt, error) {
	if supplierName == "" {
		return model.FinancialDebt{}, ErrMissingCreditor
	}
	if initialAmount.Cmp(decimal.Zero) <= 0 {
		return model.FinancialDebt{}, ErrNonPositiveAmount
	}
	return model.FinancialDebt{
		ID:            model.FlexID(id),
		SupplierName:  supplierName,
		SupplierPhone: supplierPhone,
		InitialAmount: model.NewAmount(initialAmount),
		Notes:         notes,
		Date:          date,
		Payments:      []model.Payment{},
	}, nil
}

// AddPayment appends a payment to the debt's history and returns the updated
// record. The principal is never touched; paying past zero leaves a credit.
func AddPayment(d model.FinancialDebt, paymentID string, amount decimal.Decimal, date, notes string) (model.FinancialDebt, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return d, ErrNonPositiveAmount
	}
	payments := make([]model.Payment, 0, len(d.Payments)+1)
	payments = append(payments, d.Payments...)
	payments = append(payments, model.Payment{
		ID:     model.FlexID(paymentID),
		Amount: model.NewAmount(amount),
		Date:   date,
		Notes:  notes,
	})
	d.Payments = payments
	return d, nil
}

// CustomerPaymentEntry builds the payment-only sale entry that records cash
// collected against a customer's balance. Prior entries are never adjusted;
// the zero finalPrice marks this as a collection, keeping the audit trail
// append-only.
func CustomerPaymentEntry(id, date, customerName, customerPhone string, amount decimal.Decimal, notes string) (model.SaleEntry, error) {
	if customerName == "" {
		return model.SaleEntry{}, ErrMissingCustomer
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return model.SaleEntry{}, ErrNonPositiveAmount
	}
	description := "Payment on account"
	if notes != "" {
		description = notes
	}
	return model.SaleEntry{
		ID:            model.FlexID(id),
		Date:          date,
		Description:   description,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		FinalPrice:    model.NewAmount(decimal.Zero),
		AmountPaid:    model.NewAmount(amount),
	}, nil
}
