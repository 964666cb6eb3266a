package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the row shape of a company debt.
type Debt struct {
	DebtID  string          `db:"debt_id"`
	Name    string          `db:"name"`
	Amount  decimal.Decimal `db:"amount"`
	DueDate time.Time       `db:"due_date"`
	Status  string          `db:"status"`
	AuditFields
}
