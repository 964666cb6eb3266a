package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is the row shape of a cash ledger entry.
type CashTransaction struct {
	TransactionID string          `db:"transaction_id"`
	Direction     string          `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	Counterparty  string          `db:"counterparty"`
	Date          time.Time       `db:"txn_date"`
	Note          string          `db:"note"`
	Category      string          `db:"category"`
	AuditFields
}

// Category is the row shape of a transaction category.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	AppliesTo  string `db:"applies_to"`
	AuditFields
}
