package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the row shape of a construction project. Profit is only
// meaningful once Finalized is true.
type Project struct {
	ProjectID string          `db:"project_id"`
	Name      string          `db:"name"`
	Budget    decimal.Decimal `db:"budget"`
	Profit    decimal.Decimal `db:"profit"`
	Finalized bool            `db:"finalized"`
	AuditFields
}

// ProjectExpense is the row shape of an expense recorded against a project.
type ProjectExpense struct {
	ExpenseID   string          `db:"expense_id"`
	ProjectID   string          `db:"project_id"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"expense_date"`
	AuditFields
}
