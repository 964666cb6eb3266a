package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeClass selects the compensation model and which money list an
// employee owns: salaried and contractor staff take wage advances, the owner
// records withdrawals instead.
type EmployeeClass string

const (
	Salaried   EmployeeClass = "SALARIED"
	Contractor EmployeeClass = "CONTRACTOR"
	Owner      EmployeeClass = "OWNER"
)

// Valid reports whether c is one of the known classes.
func (c EmployeeClass) Valid() bool {
	return c == Salaried || c == Contractor || c == Owner
}

// WageAdvance is money handed to a non-owner employee ahead of payday.
// Recording one does not touch the cash book.
type WageAdvance struct {
	AdvanceID  string          `json:"advanceID"`
	EmployeeID string          `json:"employeeID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	AuditFields
}

// OwnerWithdrawal is money the owner takes out of the business. Recording
// one also books an outflow in the cash book.
type OwnerWithdrawal struct {
	WithdrawalID string          `json:"withdrawalID"`
	EmployeeID   string          `json:"employeeID"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Note         string          `json:"note"`
	AuditFields
}

// Employee holds either a monthly salary (Salaried), a daily rate
// (Contractor) or neither (Owner), and exactly one of the two money lists
// depending on class.
type Employee struct {
	EmployeeID  string            `json:"employeeID"`
	Name        string            `json:"name"`
	Class       EmployeeClass     `json:"class"`
	Role        string            `json:"role,omitempty"` // job title, empty for Owner
	Salary      *decimal.Decimal  `json:"salary,omitempty"`
	DailyRate   *decimal.Decimal  `json:"dailyRate,omitempty"`
	AvatarURL   string            `json:"avatarURL"`
	Advances    []WageAdvance     `json:"advances,omitempty"`
	Withdrawals []OwnerWithdrawal `json:"withdrawals,omitempty"`
	AuditFields
}

// Compensation returns the figure the employee's class pays by: the monthly
// salary for Salaried, the daily rate for Contractor, nil for Owner. Only the
// field matching Class is ever set; the other stays nil.
func (e *Employee) Compensation() *decimal.Decimal {
	switch e.Class {
	case Salaried:
		return e.Salary
	case Contractor:
		return e.DailyRate
	default:
		return nil
	}
}
