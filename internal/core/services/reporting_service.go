package services

import (
	"context"
	"fmt"

	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService derives every figure from full fresh reads through the
// pure accounting package. Nothing here caches or writes.
type reportingService struct {
	BaseService
	txnRepo        portsrepo.TransactionRepository
	debtRepo       portsrepo.DebtRepository
	projectRepo    portsrepo.ProjectRepository
	receivableRepo portsrepo.ReceivableRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(
	txnRepo portsrepo.TransactionRepository,
	debtRepo portsrepo.DebtRepository,
	projectRepo portsrepo.ProjectRepository,
	receivableRepo portsrepo.ReceivableRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:        txnRepo,
		debtRepo:       debtRepo,
		projectRepo:    projectRepo,
		receivableRepo: receivableRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) CashSummary(ctx context.Context, params dto.ListTransactionsParams) (*dto.CashSummaryResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	txns = applyLedgerFilters(txns, params)

	return &dto.CashSummaryResponse{
		Balance:      accounting.Balance(txns),
		TotalInflow:  accounting.TotalByDirection(txns, domain.Inflow),
		TotalOutflow: accounting.TotalByDirection(txns, domain.Outflow),
	}, nil
}

func (s *reportingService) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivables: %w", err)
	}

	resp := &dto.DashboardSummaryResponse{
		CashBalance:     accounting.Balance(txns),
		TotalReceivable: decimal.Zero,
		ActiveDebts:     decimal.Zero,
		TotalProfit:     decimal.Zero,
	}

	for i := range receivables {
		resp.TotalReceivable = resp.TotalReceivable.Add(receivables[i].Outstanding())
	}
	for i := range debts {
		if debts[i].Status == domain.DebtSettled {
			continue
		}
		resp.ActiveDebts = resp.ActiveDebts.Add(debts[i].Amount)
		if debts[i].Status == domain.DebtOverdue {
			resp.OverdueDebtCount++
		}
	}
	for i := range projects {
		if projects[i].Finalized {
			resp.TotalProfit = resp.TotalProfit.Add(projects[i].Profit)
		} else {
			resp.OpenProjects++
		}
	}

	return resp, nil
}

func (s *reportingService) ExpenseBreakdown(ctx context.Context, params dto.ListTransactionsParams) (*dto.ExpenseBreakdownResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	txns = applyLedgerFilters(txns, params)

	resp := dto.ToExpenseBreakdownResponse(accounting.ExpenseBreakdown(txns))
	return &resp, nil
}

func (s *reportingService) MonthlyFlow(ctx context.Context) (*dto.MonthlyFlowResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	resp := dto.ToMonthlyFlowResponse(accounting.MonthlyFlow(txns))
	return &resp, nil
}

func (s *reportingService) ProjectOutcome(ctx context.Context, projectID string) (*dto.ProjectOutcomeResponse, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	totalSpent := decimal.Zero
	for i := range project.Expenses {
		totalSpent = totalSpent.Add(project.Expenses[i].Amount)
	}

	return &dto.ProjectOutcomeResponse{
		ProjectID:  project.ProjectID,
		Budget:     project.Budget,
		TotalSpent: totalSpent,
		Outcome:    accounting.ProjectOutcome(project.Budget, project.Expenses),
		Finalized:  project.Finalized,
	}, nil
}

func (s *reportingService) ReceivableProgress(ctx context.Context, receivableID string) (*dto.ReceivableProgressResponse, error) {
	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivable: %w", err)
	}

	return &dto.ReceivableProgressResponse{
		ReceivableID: receivable.ReceivableID,
		PaidAmount:   receivable.PaidAmount,
		TotalAmount:  receivable.TotalAmount,
		Percent:      accounting.ReceivableProgress(receivable.PaidAmount, receivable.TotalAmount).Mul(decimal.NewFromInt(100)),
	}, nil
}
