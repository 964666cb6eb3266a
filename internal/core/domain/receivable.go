package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a partial payment received against a receivable. Recording one
// also books an inflow in the cash book; deleting one does not reverse it.
type Payment struct {
	PaymentID    string          `json:"paymentID"`
	ReceivableID string          `json:"receivableID"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	AuditFields
}

// Receivable is money a customer owes the business, tracked through partial
// payments. PaidAmount mirrors the sum of the payments list.
type Receivable struct {
	ReceivableID string          `json:"receivableID"`
	Customer     string          `json:"customer"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Payments     []Payment       `json:"payments,omitempty"`
	AuditFields
}

// Outstanding is the amount still owed.
func (r Receivable) Outstanding() decimal.Decimal {
	return r.TotalAmount.Sub(r.PaidAmount)
}

// Settled reports whether the receivable is fully paid. Derived, never
// stored.
func (r Receivable) Settled() bool {
	return r.PaidAmount.GreaterThanOrEqual(r.TotalAmount)
}
