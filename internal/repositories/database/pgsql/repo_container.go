package pgsql

import (
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over a shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(pool),
		CategoryRepo:    newPgxCategoryRepository(pool),
		DebtRepo:        newPgxDebtRepository(pool),
		EmployeeRepo:    newPgxEmployeeRepository(pool),
		ProjectRepo:     newPgxProjectRepository(pool),
		ReceivableRepo:  newPgxReceivableRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
	}
}
