package services_test

import (
	"context"
	"testing"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/core/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockProjectRepository
	mockRecorder *MockLedgerRecorder
	service      portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.mockRecorder = new(MockLedgerRecorder)
	suite.service = services.NewProjectService(suite.mockRepo, suite.mockRecorder)
}

func (suite *ProjectServiceTestSuite) TestFinalizeProject_FreezesProfitAndEmitsRevenue() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "prj-1",
		Name:      "Riverside duplex",
		Budget:    decimal.NewFromInt(10000),
		Expenses: []domain.ProjectExpense{
			{ExpenseID: "exp-1", ProjectID: "prj-1", Category: "Materials", Amount: decimal.NewFromInt(4000)},
			{ExpenseID: "exp-2", ProjectID: "prj-1", Category: "Labor", Amount: decimal.NewFromInt(2500)},
		},
	}

	suite.mockRepo.On("FindProjectByID", ctx, "prj-1").Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Finalized && p.Profit.Equal(decimal.NewFromInt(3500))
	})).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Kind == domain.EventProjectFinalized &&
			e.Amount.Equal(decimal.NewFromInt(3500)) &&
			e.Counterparty == "Riverside duplex"
	})).Return(nil).Once()

	finalized, err := suite.service.FinalizeProject(ctx, adminActor, "prj-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(finalized)
	suite.True(finalized.Finalized)
	suite.True(finalized.Profit.Equal(decimal.NewFromInt(3500)))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestFinalizeProject_SecondFinalizeIsConflict() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "prj-2",
		Name:      "Warehouse refit",
		Budget:    decimal.NewFromInt(8000),
		Profit:    decimal.NewFromInt(1200),
		Finalized: true,
	}

	suite.mockRepo.On("FindProjectByID", ctx, "prj-2").Return(project, nil).Once()

	finalized, err := suite.service.FinalizeProject(ctx, adminActor, "prj-2")

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(finalized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestFinalizeProject_RecorderFailureSurfaces() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "prj-5",
		Name:      "Corner shop",
		Budget:    decimal.NewFromInt(4000),
		Expenses: []domain.ProjectExpense{
			{ExpenseID: "exp-1", ProjectID: "prj-5", Category: "Materials", Amount: decimal.NewFromInt(1000)},
		},
	}

	suite.mockRepo.On("FindProjectByID", ctx, "prj-5").Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.Anything).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.Anything).Return(apperrors.ErrInternal).Once()

	finalized, err := suite.service.FinalizeProject(ctx, adminActor, "prj-5")

	// The project is finalized in the store, but the missing ledger entry
	// must be visible to the caller.
	suite.Require().ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(finalized)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestFinalizeProject_OverBudgetFreezesLoss() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "prj-3",
		Name:      "Small extension",
		Budget:    decimal.NewFromInt(1000),
		Expenses: []domain.ProjectExpense{
			{ExpenseID: "exp-1", ProjectID: "prj-3", Category: "Materials", Amount: decimal.NewFromInt(1600)},
		},
	}

	suite.mockRepo.On("FindProjectByID", ctx, "prj-3").Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Profit.Equal(decimal.NewFromInt(-600))
	})).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Amount.Equal(decimal.NewFromInt(-600))
	})).Return(nil).Once()

	finalized, err := suite.service.FinalizeProject(ctx, adminActor, "prj-3")

	suite.Require().NoError(err)
	suite.True(finalized.Profit.IsNegative())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddExpense_AfterFinalizationStillAccepted() {
	ctx := context.Background()
	project := &domain.Project{
		ProjectID: "prj-4",
		Name:      "Done deal",
		Budget:    decimal.NewFromInt(5000),
		Profit:    decimal.NewFromInt(2000),
		Finalized: true,
	}

	suite.mockRepo.On("FindProjectByID", ctx, "prj-4").Return(project, nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.ProjectExpense) bool {
		return e.ProjectID == "prj-4" && e.Amount.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()

	expense, err := suite.service.AddExpense(ctx, adminActor, "prj-4", dto.CreateProjectExpenseRequest{
		Category: "Warranty repairs",
		Amount:   decimal.NewFromInt(300),
		Date:     day(2024, 7, 15),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	// Expenses never re-open the frozen profit and never touch the ledger.
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestFinalizeProject_ViewerIsSilentNoop() {
	ctx := context.Background()

	finalized, err := suite.service.FinalizeProject(ctx, viewerActor, "prj-1")

	suite.Require().NoError(err)
	suite.Nil(finalized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
