package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the row shape of an employee. Salary and DailyRate are
// nullable; at most one is set depending on the class.
type Employee struct {
	EmployeeID string           `db:"employee_id"`
	Name       string           `db:"name"`
	Class      string           `db:"class"`
	Role       string           `db:"role"`
	Salary     *decimal.Decimal `db:"salary"`
	DailyRate  *decimal.Decimal `db:"daily_rate"`
	AvatarURL  string           `db:"avatar_url"`
	AuditFields
}

// WageAdvance is the row shape of a wage advance.
type WageAdvance struct {
	AdvanceID  string          `db:"advance_id"`
	EmployeeID string          `db:"employee_id"`
	Amount     decimal.Decimal `db:"amount"`
	Date       time.Time       `db:"advance_date"`
	AuditFields
}

// OwnerWithdrawal is the row shape of an owner withdrawal.
type OwnerWithdrawal struct {
	WithdrawalID string          `db:"withdrawal_id"`
	EmployeeID   string          `db:"employee_id"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"withdrawal_date"`
	Note         string          `db:"note"`
	AuditFields
}
