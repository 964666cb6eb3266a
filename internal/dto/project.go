package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest is the payload for opening a construction project.
type CreateProjectRequest struct {
	Name   string          `json:"name" binding:"required"`
	Budget decimal.Decimal `json:"budget" binding:"required"`
}

// UpdateProjectRequest carries optional field updates for a project. The
// finalized flag and profit are not editable here; finalization has its own
// endpoint.
type UpdateProjectRequest struct {
	Name   *string          `json:"name,omitempty"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
}

// CreateProjectExpenseRequest records an expense against a project.
type CreateProjectExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
}

// UpdateProjectExpenseRequest carries optional field updates for an expense.
type UpdateProjectExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty" time_format:"2006-01-02"`
}

// ProjectExpenseResponse is the wire shape of a project expense.
type ProjectExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// ProjectResponse is the wire shape of a project. Profit is only meaningful
// once the project is finalized.
type ProjectResponse struct {
	ProjectID  string                   `json:"projectID"`
	Name       string                   `json:"name"`
	Budget     decimal.Decimal          `json:"budget"`
	Profit     *decimal.Decimal         `json:"profit,omitempty"`
	Finalized  bool                     `json:"finalized"`
	TotalSpent decimal.Decimal          `json:"totalSpent"`
	Expenses   []ProjectExpenseResponse `json:"expenses,omitempty"`
}

// ToProjectExpenseResponse converts a domain expense to its wire shape.
func ToProjectExpenseResponse(e *domain.ProjectExpense) ProjectExpenseResponse {
	return ProjectExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
	}
}

// ToProjectResponse converts a domain project to its wire shape.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Budget:    p.Budget,
		Finalized: p.Finalized,
	}
	if p.Finalized {
		profit := p.Profit
		resp.Profit = &profit
	}
	total := decimal.Zero
	for i := range p.Expenses {
		total = total.Add(p.Expenses[i].Amount)
		resp.Expenses = append(resp.Expenses, ToProjectExpenseResponse(&p.Expenses[i]))
	}
	resp.TotalSpent = total
	return resp
}

// ToProjectResponses converts a slice of domain projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}
