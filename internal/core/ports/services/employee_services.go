package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee with their money lists.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees with their money lists.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee registers a new employee.
	CreateEmployee(ctx context.Context, actor domain.User, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, actor domain.User, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee and their money lists. The ledger
	// is untouched.
	DeleteEmployee(ctx context.Context, actor domain.User, employeeID string) error
}

// EmployeeMoneySvc defines operations on the per-employee money lists
type EmployeeMoneySvc interface {
	// RecordAdvance records a wage advance for a non-owner employee.
	// Advances stay internal to the employee record and never touch the
	// ledger.
	RecordAdvance(ctx context.Context, actor domain.User, employeeID string, req dto.CreateAdvanceRequest) (*domain.WageAdvance, error)

	// DeleteAdvance removes a wage advance.
	DeleteAdvance(ctx context.Context, actor domain.User, employeeID, advanceID string) error

	// RecordWithdrawal records an owner withdrawal and emits the matching
	// outflow entry.
	RecordWithdrawal(ctx context.Context, actor domain.User, employeeID string, req dto.CreateWithdrawalRequest) (*domain.OwnerWithdrawal, error)

	// DeleteWithdrawal removes an owner withdrawal. The ledger entry it
	// produced stays.
	DeleteWithdrawal(ctx context.Context, actor domain.User, employeeID, withdrawalID string) error
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeMoneySvc
}
