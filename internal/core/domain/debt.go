package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a debt. Settled is terminal.
type DebtStatus string

const (
	DebtCurrent DebtStatus = "CURRENT"
	DebtOverdue DebtStatus = "OVERDUE"
	DebtSettled DebtStatus = "SETTLED"
)

// Valid reports whether s is one of the known statuses.
func (s DebtStatus) Valid() bool {
	return s == DebtCurrent || s == DebtOverdue || s == DebtSettled
}

// Debt is money the business owes. Settling it is a one-way transition that
// also books an outflow in the cash book.
type Debt struct {
	DebtID  string          `json:"debtID"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"dueDate"`
	Status  DebtStatus      `json:"status"`
	AuditFields
}
