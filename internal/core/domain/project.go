package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectExpense is a single cost booked against a construction project.
type ProjectExpense struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	AuditFields
}

// Project is a budgeted construction job. While Finalized is false the
// stored Profit is not authoritative; views compute budget minus expenses on
// the fly. Finalizing freezes Profit at that instant and books it as an
// inflow.
type Project struct {
	ProjectID string           `json:"projectID"`
	Name      string           `json:"name"`
	Budget    decimal.Decimal  `json:"budget"`
	Profit    decimal.Decimal  `json:"profit"`
	Finalized bool             `json:"finalized"`
	Expenses  []ProjectExpense `json:"expenses,omitempty"`
	AuditFields
}
