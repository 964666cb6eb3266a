package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/core/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) ledger() []domain.CashTransaction {
	return []domain.CashTransaction{
		{TransactionID: "t1", Direction: domain.Inflow, Amount: decimal.NewFromInt(1000), Category: "Sales", Date: day(2024, 1, 10)},
		{TransactionID: "t2", Direction: domain.Outflow, Amount: decimal.NewFromInt(300), Category: "Materials", Date: day(2024, 2, 5)},
		{TransactionID: "t3", Direction: domain.Inflow, Amount: decimal.NewFromInt(200), Category: "Sales", Date: day(2024, 2, 20)},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Direction:    domain.Outflow,
		Amount:       decimal.NewFromInt(450),
		Counterparty: "Hardware store",
		Date:         day(2024, 3, 2),
		Category:     "Tools",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.CashTransaction) bool {
		return t.Direction == domain.Outflow && t.Amount.Equal(req.Amount) && t.CreatedBy == adminActor.UserID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, adminActor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Direction:    domain.Inflow,
		Amount:       decimal.Zero,
		Counterparty: "Nobody",
		Date:         day(2024, 3, 2),
		Category:     "Sales",
	}

	txn, err := suite.service.CreateTransaction(ctx, adminActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ViewerIsSilentNoop() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Direction:    domain.Inflow,
		Amount:       decimal.NewFromInt(10),
		Counterparty: "Someone",
		Date:         day(2024, 3, 2),
		Category:     "Sales",
	}

	txn, err := suite.service.CreateTransaction(ctx, viewerActor, req)

	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NewestFirst() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.ledger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.Equal("t3", txns[0].TransactionID)
	suite.Equal("t2", txns[1].TransactionID)
	suite.Equal("t1", txns[2].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FromDateInclusive() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.ledger(), nil).Once()

	from := day(2024, 2, 5)
	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{From: &from})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("t3", txns[0].TransactionID)
	suite.Equal("t2", txns[1].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.ledger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Year: 2024, Month: time.February})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	for _, t := range txns {
		suite.Equal(time.February, t.Date.Month())
	}
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DirectionFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.ledger(), nil).Once()

	dir := domain.Outflow
	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Direction: &dir})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal("t2", txns[0].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ViewerIsSilentNoop() {
	ctx := context.Background()

	err := suite.service.DeleteTransaction(ctx, viewerActor, "t1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
