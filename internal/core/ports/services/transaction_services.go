package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
)

// TransactionReaderSvc defines read operations for the cash ledger
type TransactionReaderSvc interface {
	// ListTransactions retrieves ledger entries matching the filter params,
	// newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.CashTransaction, error)
}

// TransactionWriterSvc defines write operations for the cash ledger
type TransactionWriterSvc interface {
	// CreateTransaction appends a manual entry to the ledger.
	CreateTransaction(ctx context.Context, actor domain.User, req dto.CreateTransactionRequest) (*domain.CashTransaction, error)

	// DeleteTransaction removes a ledger entry. Removal never cascades to
	// the entity that produced the entry.
	DeleteTransaction(ctx context.Context, actor domain.User, transactionID string) error
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// CategorySvcFacade defines operations for transaction categories
type CategorySvcFacade interface {
	// CreateCategory registers a new category.
	CreateCategory(ctx context.Context, actor domain.User, req dto.CreateCategoryRequest) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory updates a category's name or scope.
	UpdateCategory(ctx context.Context, actor domain.User, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category. Existing ledger entries keep their
	// category string.
	DeleteCategory(ctx context.Context, actor domain.User, categoryID string) error
}
