package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// TransactionRepository persists cash book entries. Lists come back
// unordered; ordering and filtering are the aggregation engine's job, since
// views always recompute from full re-reads.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.CashTransaction) error
	ListTransactions(ctx context.Context) ([]domain.CashTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
