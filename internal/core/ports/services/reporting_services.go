package services

import (
	"context"

	"github.com/construtech/backoffice/internal/dto"
)

// ReportingSvcFacade defines operations for derived financial figures. All
// figures come out of the pure accounting package over fresh reads; nothing
// here writes.
type ReportingSvcFacade interface {
	// CashSummary computes balance and per-direction totals over the
	// entries matching the filter params.
	CashSummary(ctx context.Context, params dto.ListTransactionsParams) (*dto.CashSummaryResponse, error)

	// DashboardSummary computes the headline dashboard figures.
	DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)

	// ExpenseBreakdown computes the per-category outflow breakdown over the
	// entries matching the filter params.
	ExpenseBreakdown(ctx context.Context, params dto.ListTransactionsParams) (*dto.ExpenseBreakdownResponse, error)

	// MonthlyFlow computes inflow/outflow buckets for the six most recent
	// months that have entries.
	MonthlyFlow(ctx context.Context) (*dto.MonthlyFlowResponse, error)

	// ProjectOutcome reports budget versus accumulated spend for a project.
	ProjectOutcome(ctx context.Context, projectID string) (*dto.ProjectOutcomeResponse, error)

	// ReceivableProgress reports collection progress for a receivable.
	ReceivableProgress(ctx context.Context, receivableID string) (*dto.ReceivableProgressResponse, error)
}
