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

type DebtServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockDebtRepository
	mockRecorder *MockLedgerRecorder
	service      portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDebtRepository)
	suite.mockRecorder = new(MockLedgerRecorder)
	suite.service = services.NewDebtService(suite.mockRepo, suite.mockRecorder)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:    "Steel supplier invoice",
		Amount:  decimal.NewFromInt(1500),
		DueDate: day(2024, 4, 30),
	}

	suite.mockRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.Name == req.Name && d.Amount.Equal(req.Amount) && d.Status == domain.DebtCurrent && d.CreatedBy == adminActor.UserID
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, adminActor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.Equal(domain.DebtCurrent, debt.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_CannotStartSettled() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:    "Paid already",
		Amount:  decimal.NewFromInt(100),
		DueDate: day(2024, 4, 30),
		Status:  domain.DebtSettled,
	}

	debt, err := suite.service.CreateDebt(ctx, adminActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_ViewerIsSilentNoop() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:    "Invisible",
		Amount:  decimal.NewFromInt(100),
		DueDate: day(2024, 4, 30),
	}

	debt, err := suite.service.CreateDebt(ctx, viewerActor, req)

	suite.Require().NoError(err)
	suite.Nil(debt)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSettleDebt_EmitsOutflowEntry() {
	ctx := context.Background()
	existing := &domain.Debt{
		DebtID:  "debt-1",
		Name:    "Cement batch",
		Amount:  decimal.NewFromInt(800),
		DueDate: day(2024, 5, 1),
		Status:  domain.DebtOverdue,
	}

	suite.mockRepo.On("FindDebtByID", ctx, "debt-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.DebtID == "debt-1" && d.Status == domain.DebtSettled
	})).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Kind == domain.EventDebtSettled && e.Amount.Equal(decimal.NewFromInt(800)) && e.Counterparty == "Cement batch"
	})).Return(nil).Once()

	debt, err := suite.service.SettleDebt(ctx, adminActor, "debt-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.Equal(domain.DebtSettled, debt.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestSettleDebt_AlreadySettledIsIdempotent() {
	ctx := context.Background()
	existing := &domain.Debt{
		DebtID: "debt-2",
		Name:   "Old invoice",
		Amount: decimal.NewFromInt(300),
		Status: domain.DebtSettled,
	}

	suite.mockRepo.On("FindDebtByID", ctx, "debt-2").Return(existing, nil).Once()

	debt, err := suite.service.SettleDebt(ctx, adminActor, "debt-2")

	suite.Require().NoError(err)
	suite.Equal(domain.DebtSettled, debt.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDebt", mock.Anything, mock.Anything)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSettleDebt_RecorderFailureSurfaces() {
	ctx := context.Background()
	existing := &domain.Debt{
		DebtID: "debt-3",
		Name:   "Gravel",
		Amount: decimal.NewFromInt(250),
		Status: domain.DebtCurrent,
	}

	suite.mockRepo.On("FindDebtByID", ctx, "debt-3").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDebt", ctx, mock.Anything).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.Anything).Return(apperrors.ErrInternal).Once()

	debt, err := suite.service.SettleDebt(ctx, adminActor, "debt-3")

	// The debt stays settled in the store, but the missing ledger entry
	// must be visible to the caller; no rollback happens either way.
	suite.Require().ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(debt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestSettleDebt_ViewerIsSilentNoop() {
	ctx := context.Background()

	debt, err := suite.service.SettleDebt(ctx, viewerActor, "debt-1")

	suite.Require().NoError(err)
	suite.Nil(debt)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindDebtByID", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_SettlingViaUpdateRejected() {
	ctx := context.Background()
	existing := &domain.Debt{
		DebtID: "debt-4",
		Name:   "Lumber",
		Amount: decimal.NewFromInt(400),
		Status: domain.DebtCurrent,
	}
	settled := domain.DebtSettled

	suite.mockRepo.On("FindDebtByID", ctx, "debt-4").Return(existing, nil).Once()

	debt, err := suite.service.UpdateDebt(ctx, adminActor, "debt-4", dto.UpdateDebtRequest{Status: &settled})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDebt", mock.Anything, mock.Anything)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
