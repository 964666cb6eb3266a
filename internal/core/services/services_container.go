package services

import (
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger recorder comes first; every entity service that propagates
	// into the cash book depends on it.
	recorder := NewLedgerRecorder(repos.TransactionRepo)

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Debt = NewDebtService(repos.DebtRepo, recorder)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, recorder)
	container.Project = NewProjectService(repos.ProjectRepo, recorder)
	container.Receivable = NewReceivableService(repos.ReceivableRepo, recorder)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleOAuthService(cfg)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.DebtRepo, repos.ProjectRepo, repos.ReceivableRepo)

	return container
}
