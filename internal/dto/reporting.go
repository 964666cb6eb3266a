package dto

import (
	"github.com/construtech/backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse carries the headline figures for the dashboard.
type DashboardSummaryResponse struct {
	CashBalance      decimal.Decimal `json:"cashBalance"`
	TotalReceivable  decimal.Decimal `json:"totalReceivable"`
	ActiveDebts      decimal.Decimal `json:"activeDebts"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	OpenProjects     int             `json:"openProjects"`
	OverdueDebtCount int             `json:"overdueDebtCount"`
}

// CategoryBreakdownEntry is one slice of the expense breakdown. Percent is
// the category's share of total outflow, 0..100.
type CategoryBreakdownEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// ExpenseBreakdownResponse is the categorised outflow report.
type ExpenseBreakdownResponse struct {
	Total   decimal.Decimal          `json:"total"`
	Entries []CategoryBreakdownEntry `json:"entries"`
}

// MonthlyFlowEntry is one month's inflow/outflow bucket.
type MonthlyFlowEntry struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyFlowResponse carries up to the six most recent monthly buckets,
// oldest first.
type MonthlyFlowResponse struct {
	Buckets []MonthlyFlowEntry `json:"buckets"`
}

// ProjectOutcomeResponse reports budget versus accumulated spend for a
// project.
type ProjectOutcomeResponse struct {
	ProjectID  string          `json:"projectID"`
	Budget     decimal.Decimal `json:"budget"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	Outcome    decimal.Decimal `json:"outcome"`
	Finalized  bool            `json:"finalized"`
}

// ReceivableProgressResponse reports collection progress for a receivable.
// Percent is 0..100.
type ReceivableProgressResponse struct {
	ReceivableID string          `json:"receivableID"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Percent      decimal.Decimal `json:"percent"`
}

// ToExpenseBreakdownResponse converts engine breakdown entries to the wire
// shape.
func ToExpenseBreakdownResponse(entries []accounting.CategoryAmount) ExpenseBreakdownResponse {
	resp := ExpenseBreakdownResponse{Total: decimal.Zero}
	for _, e := range entries {
		resp.Total = resp.Total.Add(e.Amount)
		resp.Entries = append(resp.Entries, CategoryBreakdownEntry{
			Category: e.Category,
			Amount:   e.Amount,
			Percent:  e.Percent,
		})
	}
	return resp
}

// ToMonthlyFlowResponse converts engine buckets to the wire shape.
func ToMonthlyFlowResponse(buckets []accounting.MonthlyBucket) MonthlyFlowResponse {
	resp := MonthlyFlowResponse{}
	for _, b := range buckets {
		resp.Buckets = append(resp.Buckets, MonthlyFlowEntry{
			Year:    b.Year,
			Month:   int(b.Month),
			Inflow:  b.Inflow,
			Outflow: b.Outflow,
			Net:     b.Net,
		})
	}
	return resp
}
