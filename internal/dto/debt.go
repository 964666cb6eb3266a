package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest is the payload for registering a debt. Status is chosen
// by the user but may not start settled; settling goes through the settle
// action so the ledger entry is emitted.
type CreateDebtRequest struct {
	Name    string            `json:"name" binding:"required"`
	Amount  decimal.Decimal   `json:"amount" binding:"required"`
	DueDate time.Time         `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Status  domain.DebtStatus `json:"status"`
}

// UpdateDebtRequest carries optional field updates for a debt.
type UpdateDebtRequest struct {
	Name    *string            `json:"name,omitempty"`
	Amount  *decimal.Decimal   `json:"amount,omitempty"`
	DueDate *time.Time         `json:"dueDate,omitempty" time_format:"2006-01-02"`
	Status  *domain.DebtStatus `json:"status,omitempty"`
}

// DebtResponse is the wire shape of a debt.
type DebtResponse struct {
	DebtID  string          `json:"debtID"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate"`
	Status  string          `json:"status"`
}

// ToDebtResponse converts a domain debt to its wire shape.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:  d.DebtID,
		Name:    d.Name,
		Amount:  d.Amount,
		DueDate: d.DueDate.Format("2006-01-02"),
		Status:  string(d.Status),
	}
}

// ToDebtResponses converts a slice of domain debts.
func ToDebtResponses(debts []domain.Debt) []DebtResponse {
	out := make([]DebtResponse, len(debts))
	for i := range debts {
		out[i] = ToDebtResponse(&debts[i])
	}
	return out
}
