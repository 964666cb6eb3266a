package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is the payload for registering an employee. The
// service keeps only the compensation field matching the class and discards
// the other.
type CreateEmployeeRequest struct {
	Name      string               `json:"name" binding:"required"`
	Class     domain.EmployeeClass `json:"class" binding:"required"`
	Role      string               `json:"role"`
	Salary    *decimal.Decimal     `json:"salary,omitempty"`
	DailyRate *decimal.Decimal     `json:"dailyRate,omitempty"`
	AvatarURL string               `json:"avatarURL"`
}

// UpdateEmployeeRequest carries optional field updates for an employee.
type UpdateEmployeeRequest struct {
	Name      *string               `json:"name,omitempty"`
	Class     *domain.EmployeeClass `json:"class,omitempty"`
	Role      *string               `json:"role,omitempty"`
	Salary    *decimal.Decimal      `json:"salary,omitempty"`
	DailyRate *decimal.Decimal      `json:"dailyRate,omitempty"`
	AvatarURL *string               `json:"avatarURL,omitempty"`
}

// CreateAdvanceRequest records a wage advance for a non-owner employee.
type CreateAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
}

// CreateWithdrawalRequest records an owner withdrawal.
type CreateWithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	Note   string          `json:"note"`
}

// AdvanceResponse is the wire shape of a wage advance.
type AdvanceResponse struct {
	AdvanceID string          `json:"advanceID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
}

// WithdrawalResponse is the wire shape of an owner withdrawal.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Note         string          `json:"note,omitempty"`
}

// EmployeeResponse is the wire shape of an employee, carrying whichever
// money list matches the class.
type EmployeeResponse struct {
	EmployeeID  string               `json:"employeeID"`
	Name        string               `json:"name"`
	Class       string               `json:"class"`
	Role        string               `json:"role,omitempty"`
	Salary      *decimal.Decimal     `json:"salary,omitempty"`
	DailyRate   *decimal.Decimal     `json:"dailyRate,omitempty"`
	AvatarURL   string               `json:"avatarURL"`
	Advances    []AdvanceResponse    `json:"advances,omitempty"`
	Withdrawals []WithdrawalResponse `json:"withdrawals,omitempty"`
}

// ToAdvanceResponse converts a domain wage advance to its wire shape.
func ToAdvanceResponse(a *domain.WageAdvance) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID: a.AdvanceID,
		Amount:    a.Amount,
		Date:      a.Date.Format("2006-01-02"),
	}
}

// ToWithdrawalResponse converts a domain owner withdrawal to its wire shape.
func ToWithdrawalResponse(w *domain.OwnerWithdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		Amount:       w.Amount,
		Date:         w.Date.Format("2006-01-02"),
		Note:         w.Note,
	}
}

// ToEmployeeResponse converts a domain employee to its wire shape.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Class:      string(e.Class),
		Role:       e.Role,
		Salary:     e.Salary,
		DailyRate:  e.DailyRate,
		AvatarURL:  e.AvatarURL,
	}
	for _, a := range e.Advances {
		resp.Advances = append(resp.Advances, AdvanceResponse{
			AdvanceID: a.AdvanceID,
			Amount:    a.Amount,
			Date:      a.Date.Format("2006-01-02"),
		})
	}
	for _, w := range e.Withdrawals {
		resp.Withdrawals = append(resp.Withdrawals, WithdrawalResponse{
			WithdrawalID: w.WithdrawalID,
			Amount:       w.Amount,
			Date:         w.Date.Format("2006-01-02"),
			Note:         w.Note,
		})
	}
	return resp
}

// ToEmployeeResponses converts a slice of domain employees.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}
