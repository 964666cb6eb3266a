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

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockEmployeeRepository
	mockRecorder *MockLedgerRecorder
	service      portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.mockRecorder = new(MockLedgerRecorder)
	suite.service = services.NewEmployeeService(suite.mockRepo, suite.mockRecorder)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_KeepsOnlyMatchingCompensation() {
	ctx := context.Background()
	salary := decimal.NewFromInt(3000)
	rate := decimal.NewFromInt(150)
	req := dto.CreateEmployeeRequest{
		Name:      "Marta",
		Class:     domain.Salaried,
		Salary:    &salary,
		DailyRate: &rate,
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Salary != nil && e.Salary.Equal(salary) && e.DailyRate == nil
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, adminActor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.Nil(employee.DailyRate)
	suite.Contains(employee.AvatarURL, "seed=Marta", "missing avatar defaults from the name")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_OwnerCarriesNoCompensation() {
	ctx := context.Background()
	salary := decimal.NewFromInt(3000)
	req := dto.CreateEmployeeRequest{
		Name:   "Dono",
		Class:  domain.Owner,
		Role:   "Gerente",
		Salary: &salary,
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Salary == nil && e.DailyRate == nil
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, adminActor, req)

	suite.Require().NoError(err)
	suite.Nil(employee.Salary)
	suite.Empty(employee.Role, "owners carry no job role")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestRecordAdvance_OwnerRejected() {
	ctx := context.Background()
	owner := &domain.Employee{EmployeeID: "emp-1", Name: "Dono", Class: domain.Owner}

	suite.mockRepo.On("FindEmployeeByID", ctx, "emp-1").Return(owner, nil).Once()

	advance, err := suite.service.RecordAdvance(ctx, adminActor, "emp-1", dto.CreateAdvanceRequest{
		Amount: decimal.NewFromInt(200),
		Date:   day(2024, 5, 10),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(advance)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestRecordAdvance_NeverTouchesLedger() {
	ctx := context.Background()
	contractor := &domain.Employee{EmployeeID: "emp-2", Name: "Pedro", Class: domain.Contractor}

	suite.mockRepo.On("FindEmployeeByID", ctx, "emp-2").Return(contractor, nil).Once()
	suite.mockRepo.On("SaveAdvance", ctx, mock.Anything).Return(nil).Once()

	advance, err := suite.service.RecordAdvance(ctx, adminActor, "emp-2", dto.CreateAdvanceRequest{
		Amount: decimal.NewFromInt(200),
		Date:   day(2024, 5, 10),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(advance)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestRecordWithdrawal_NonOwnerRejected() {
	ctx := context.Background()
	contractor := &domain.Employee{EmployeeID: "emp-2", Name: "Pedro", Class: domain.Contractor}

	suite.mockRepo.On("FindEmployeeByID", ctx, "emp-2").Return(contractor, nil).Once()

	withdrawal, err := suite.service.RecordWithdrawal(ctx, adminActor, "emp-2", dto.CreateWithdrawalRequest{
		Amount: decimal.NewFromInt(500),
		Date:   day(2024, 5, 10),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(withdrawal)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWithdrawal", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestRecordWithdrawal_EmitsOutflowEntry() {
	ctx := context.Background()
	owner := &domain.Employee{EmployeeID: "emp-1", Name: "Dono", Class: domain.Owner}

	suite.mockRepo.On("FindEmployeeByID", ctx, "emp-1").Return(owner, nil).Once()
	suite.mockRepo.On("SaveWithdrawal", ctx, mock.Anything).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Kind == domain.EventOwnerWithdrawalRecorded &&
			e.Amount.Equal(decimal.NewFromInt(500)) &&
			e.Counterparty == "Dono"
	})).Return(nil).Once()

	withdrawal, err := suite.service.RecordWithdrawal(ctx, adminActor, "emp-1", dto.CreateWithdrawalRequest{
		Amount: decimal.NewFromInt(500),
		Date:   day(2024, 5, 10),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestRecordWithdrawal_RecorderFailureSurfaces() {
	ctx := context.Background()
	owner := &domain.Employee{EmployeeID: "emp-1", Name: "Dono", Class: domain.Owner}

	suite.mockRepo.On("FindEmployeeByID", ctx, "emp-1").Return(owner, nil).Once()
	suite.mockRepo.On("SaveWithdrawal", ctx, mock.Anything).Return(nil).Once()
	suite.mockRecorder.On("RecordEvent", ctx, adminActor, mock.Anything).Return(apperrors.ErrInternal).Once()

	withdrawal, err := suite.service.RecordWithdrawal(ctx, adminActor, "emp-1", dto.CreateWithdrawalRequest{
		Amount: decimal.NewFromInt(500),
		Date:   day(2024, 5, 10),
	})

	// The withdrawal stays saved, but the missing ledger entry must be
	// visible to the caller; no rollback happens either way.
	suite.Require().ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(withdrawal)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteWithdrawal_LeavesLedgerAlone() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteWithdrawal", ctx, "emp-1", "wd-1").Return(nil).Once()

	err := suite.service.DeleteWithdrawal(ctx, adminActor, "emp-1", "wd-1")

	suite.Require().NoError(err)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
