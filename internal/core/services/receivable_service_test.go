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

type ReceivableServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockReceivableRepository
	mockRecorder *MockLedgerRecorder
	service      portssvc.ReceivableSvcFacade
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReceivableRepository)
	suite.mockRecorder = new(MockLedgerRecorder)
	suite.service = services.NewReceivableService(suite.mockRepo, suite.mockRecorder)
}

func (suite *ReceivableServiceTestSuite) receivable(paid int64) *domain.Receivable {
	return &domain.Receivable{
		ReceivableID: "rcv-1",
		Customer:     "Casa Nova Ltda",
		TotalAmount:  decimal.NewFromInt(5000),
		PaidAmount:   decimal.NewFromInt(paid),
	}
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_GrowsPaidAndEmitsInflow() {
	ctx := context.Background()
	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(2000), nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ReceivableID == "rcv-1" && p.Amount.Equal(decimal.NewFromInt(3000))
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateReceivable", ctx, mock.MatchedBy(func(r domain.Receivable) bool {
		return r.PaidAmount.Equal(decimal.NewFromInt(5000))
	})).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Kind == domain.EventReceivablePaymentRecorded &&
			e.Amount.Equal(decimal.NewFromInt(3000)) &&
			e.Counterparty == "Casa Nova Ltda"
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, adminActor, "rcv-1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(3000),
		Date:   day(2024, 6, 1),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_OvershootRejected() {
	ctx := context.Background()
	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(2000), nil).Once()

	payment, err := suite.service.RecordPayment(ctx, adminActor, "rcv-1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(3001),
		Date:   day(2024, 6, 1),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_ExactOutstandingSettles() {
	ctx := context.Background()
	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(0), nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("UpdateReceivable", ctx, mock.MatchedBy(func(r domain.Receivable) bool {
		return r.Settled()
	})).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.Anything).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, adminActor, "rcv-1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(5000),
		Date:   day(2024, 6, 1),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_RecorderFailureSurfaces() {
	ctx := context.Background()
	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(2000), nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("UpdateReceivable", ctx, mock.Anything).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.Anything).Return(apperrors.ErrInternal).Once()

	payment, err := suite.service.RecordPayment(ctx, adminActor, "rcv-1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(500),
		Date:   day(2024, 6, 1),
	})

	// The payment and paid amount stay recorded, but the missing ledger
	// entry must be visible to the caller; no rollback happens either way.
	suite.Require().ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(payment)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_ViewerIsSilentNoop() {
	ctx := context.Background()

	payment, err := suite.service.RecordPayment(ctx, viewerActor, "rcv-1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(100),
		Date:   day(2024, 6, 1),
	})

	suite.Require().NoError(err)
	suite.Nil(payment)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindReceivableByID", mock.Anything, mock.Anything)
}

func (suite *ReceivableServiceTestSuite) TestDeletePayment_RollsPaidAmountBack() {
	ctx := context.Background()
	payment := &domain.Payment{
		PaymentID:    "pay-1",
		ReceivableID: "rcv-1",
		Amount:       decimal.NewFromInt(1500),
	}

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-1").Return(payment, nil).Once()
	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(2000), nil).Once()
	suite.mockRepo.On("DeletePayment", ctx, "rcv-1", "pay-1").Return(nil).Once()
	suite.mockRepo.On("UpdateReceivable", ctx, mock.MatchedBy(func(r domain.Receivable) bool {
		return r.PaidAmount.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, adminActor, "rcv-1", "pay-1")

	suite.Require().NoError(err)
	// Deleting a payment never touches the ledger entry it produced.
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestUpdateReceivable_TotalBelowPaidRejected() {
	ctx := context.Background()
	lower := decimal.NewFromInt(1000)

	suite.mockRepo.On("FindReceivableByID", ctx, "rcv-1").Return(suite.receivable(2000), nil).Once()

	receivable, err := suite.service.UpdateReceivable(ctx, adminActor, "rcv-1", dto.UpdateReceivableRequest{TotalAmount: &lower})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(receivable)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateReceivable", mock.Anything, mock.Anything)
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
