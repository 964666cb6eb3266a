package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable is the row shape of an amount owed by a customer. PaidAmount is
// maintained by the payment operations and never edited directly.
type Receivable struct {
	ReceivableID string          `db:"receivable_id"`
	Customer     string          `db:"customer"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	AuditFields
}

// Payment is the row shape of a payment recorded against a receivable.
type Payment struct {
	PaymentID    string          `db:"payment_id"`
	ReceivableID string          `db:"receivable_id"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"payment_date"`
	AuditFields
}
