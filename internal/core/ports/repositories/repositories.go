package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass them around as one value.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	CategoryRepo    CategoryRepository
	DebtRepo        DebtRepository
	EmployeeRepo    EmployeeRepository
	ProjectRepo     ProjectRepository
	ReceivableRepo  ReceivableRepository
	UserRepo        UserRepository
}
