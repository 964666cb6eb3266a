package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	"github.com/construtech/backoffice/internal/models"
	"github.com/construtech/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for cash ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a cash ledger entry. Entries are immutable once
// written; there is no update path.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.CashTransaction) error {
	row := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO cash_transactions (transaction_id, direction, amount, counterparty, txn_date, note, category, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.TransactionID,
		row.Direction,
		row.Amount,
		row.Counterparty,
		row.Date,
		row.Note,
		row.Category,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", row.TransactionID, err)
	}
	return nil
}

// ListTransactions retrieves the full ledger. Filtering and ordering happen
// in the accounting layer.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.CashTransaction, error) {
	query := `
		SELECT transaction_id, direction, amount, counterparty, txn_date, note, category, created_at, created_by, last_updated_at, last_updated_by
		FROM cash_transactions;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashTransaction, error) {
		var txn models.CashTransaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Direction,
			&txn.Amount,
			&txn.Counterparty,
			&txn.Date,
			&txn.Note,
			&txn.Category,
			&txn.CreatedAt,
			&txn.CreatedBy,
			&txn.LastUpdatedAt,
			&txn.LastUpdatedBy,
		)
		return txn, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CashTransaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// DeleteTransaction removes a ledger entry.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM cash_transactions WHERE transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
