package services_test

import (
	"context"
	"testing"

	"github.com/construtech/backoffice/internal/core/domain"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/core/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo        *MockTransactionRepository
	mockDebtRepo       *MockDebtRepository
	mockProjectRepo    *MockProjectRepository
	mockReceivableRepo *MockReceivableRepository
	service            portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockReceivableRepo = new(MockReceivableRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockDebtRepo, suite.mockProjectRepo, suite.mockReceivableRepo)
}

func (suite *ReportingServiceTestSuite) TestCashSummary() {
	ctx := context.Background()
	ledger := []domain.CashTransaction{
		{Direction: domain.Inflow, Amount: decimal.NewFromInt(1000), Category: "Sales", Date: day(2024, 1, 10)},
		{Direction: domain.Outflow, Amount: decimal.NewFromInt(300), Category: "Materials", Date: day(2024, 1, 12)},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()

	summary, err := suite.service.CashSummary(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(700)))
	suite.True(summary.TotalInflow.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalOutflow.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary() {
	ctx := context.Background()
	ledger := []domain.CashTransaction{
		{Direction: domain.Inflow, Amount: decimal.NewFromInt(9000), Date: day(2024, 2, 1)},
		{Direction: domain.Outflow, Amount: decimal.NewFromInt(2500), Date: day(2024, 2, 2)},
	}
	debts := []domain.Debt{
		{DebtID: "d1", Amount: decimal.NewFromInt(800), Status: domain.DebtCurrent},
		{DebtID: "d2", Amount: decimal.NewFromInt(500), Status: domain.DebtOverdue},
		{DebtID: "d3", Amount: decimal.NewFromInt(999), Status: domain.DebtSettled},
	}
	projects := []domain.Project{
		{ProjectID: "p1", Budget: decimal.NewFromInt(5000), Profit: decimal.NewFromInt(1500), Finalized: true},
		{ProjectID: "p2", Budget: decimal.NewFromInt(7000)},
	}
	receivables := []domain.Receivable{
		{ReceivableID: "r1", TotalAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(1000)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockDebtRepo.On("ListDebts", ctx).Return(debts, nil).Once()
	suite.mockProjectRepo.On("ListProjects", ctx).Return(projects, nil).Once()
	suite.mockReceivableRepo.On("ListReceivables", ctx).Return(receivables, nil).Once()

	summary, err := suite.service.DashboardSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.CashBalance.Equal(decimal.NewFromInt(6500)))
	suite.True(summary.TotalReceivable.Equal(decimal.NewFromInt(3000)))
	// Settled debts stay out of the active total.
	suite.True(summary.ActiveDebts.Equal(decimal.NewFromInt(1300)))
	suite.True(summary.TotalProfit.Equal(decimal.NewFromInt(1500)))
	suite.Equal(1, summary.OpenProjects)
	suite.Equal(1, summary.OverdueDebtCount)
}

func (suite *ReportingServiceTestSuite) TestExpenseBreakdown() {
	ctx := context.Background()
	ledger := []domain.CashTransaction{
		{Direction: domain.Inflow, Amount: decimal.NewFromInt(1000), Category: "Sales", Date: day(2024, 1, 10)},
		{Direction: domain.Outflow, Amount: decimal.NewFromInt(300), Category: "Materials", Date: day(2024, 1, 12)},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()

	breakdown, err := suite.service.ExpenseBreakdown(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(breakdown.Entries, 1)
	suite.Equal("Materials", breakdown.Entries[0].Category)
	suite.True(breakdown.Entries[0].Percent.Equal(decimal.NewFromInt(100)))
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestReceivableProgress() {
	ctx := context.Background()
	receivable := &domain.Receivable{
		ReceivableID: "r1",
		TotalAmount:  decimal.NewFromInt(4000),
		PaidAmount:   decimal.NewFromInt(1000),
	}
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "r1").Return(receivable, nil).Once()

	progress, err := suite.service.ReceivableProgress(ctx, "r1")

	suite.Require().NoError(err)
	suite.True(progress.Percent.Equal(decimal.NewFromInt(25)))
}

func (suite *ReportingServiceTestSuite) TestProjectOutcome() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "p1",
		Budget:    decimal.NewFromInt(5000),
		Expenses: []domain.ProjectExpense{
			{Amount: decimal.NewFromInt(1200)},
			{Amount: decimal.NewFromInt(800)},
		},
	}
	suite.mockProjectRepo.On("FindProjectByID", ctx, "p1").Return(project, nil).Once()

	outcome, err := suite.service.ProjectOutcome(ctx, "p1")

	suite.Require().NoError(err)
	suite.True(outcome.TotalSpent.Equal(decimal.NewFromInt(2000)))
	suite.True(outcome.Outcome.Equal(decimal.NewFromInt(3000)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
