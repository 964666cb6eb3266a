package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowDirection indicates whether a cash transaction brings money in or out.
type FlowDirection string

const (
	Inflow  FlowDirection = "INFLOW"
	Outflow FlowDirection = "OUTFLOW"
)

// Valid reports whether d is one of the known directions.
func (d FlowDirection) Valid() bool {
	return d == Inflow || d == Outflow
}

// CashTransaction is a single entry in the cash book. Amount is always
// positive; the sign of its contribution to the balance comes from Direction
// alone.
type CashTransaction struct {
	TransactionID string          `json:"transactionID"`
	Direction     FlowDirection   `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Counterparty  string          `json:"counterparty"` // who the money came from / went to
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"` // optional
	Category      string          `json:"category"`
	AuditFields
}

// CategoryScope declares which transaction direction a category applies to.
type CategoryScope string

const (
	ScopeInflow  CategoryScope = "INFLOW"
	ScopeOutflow CategoryScope = "OUTFLOW"
	ScopeBoth    CategoryScope = "BOTH"
)

// Valid reports whether s is one of the known scopes.
func (s CategoryScope) Valid() bool {
	return s == ScopeInflow || s == ScopeOutflow || s == ScopeBoth
}

// Matches reports whether a category with this scope is offered for
// transactions of the given direction. ScopeBoth matches either direction.
func (s CategoryScope) Matches(d FlowDirection) bool {
	if s == ScopeBoth {
		return true
	}
	return string(s) == string(d)
}

// Category labels cash transactions. Names are not required to be unique.
type Category struct {
	CategoryID string        `json:"categoryID"`
	Name       string        `json:"name"`
	AppliesTo  CategoryScope `json:"appliesTo"`
	AuditFields
}
