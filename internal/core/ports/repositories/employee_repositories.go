package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// EmployeeRepository persists employees together with their wage advances
// and owner withdrawals. Find and List return employees with the money list
// matching their class populated.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error

	SaveAdvance(ctx context.Context, advance domain.WageAdvance) error
	DeleteAdvance(ctx context.Context, employeeID, advanceID string) error

	SaveWithdrawal(ctx context.Context, withdrawal domain.OwnerWithdrawal) error
	DeleteWithdrawal(ctx context.Context, employeeID, withdrawalID string) error
}
