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

type PgxReceivableRepository struct {
	BaseRepository
}

// newPgxReceivableRepository creates a new repository for receivable data,
// including payments.
func newPgxReceivableRepository(pool *pgxpool.Pool) portsrepo.ReceivableRepository {
	return &PgxReceivableRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReceivableRepository = (*PgxReceivableRepository)(nil)

func scanReceivable(row pgx.CollectableRow) (models.Receivable, error) {
	var rec models.Receivable
	err := row.Scan(
		&rec.ReceivableID,
		&rec.Customer,
		&rec.TotalAmount,
		&rec.PaidAmount,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	return rec, err
}

func scanPayment(row pgx.CollectableRow) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.ReceivableID,
		&p.Amount,
		&p.Date,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SaveReceivable inserts a new receivable.
func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) error {
	row := mapping.ToModelReceivable(receivable)

	query := `
		INSERT INTO receivables (receivable_id, customer, total_amount, paid_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.ReceivableID,
		row.Customer,
		row.TotalAmount,
		row.PaidAmount,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save receivable %s: %w", row.ReceivableID, err)
	}
	return nil
}

// FindReceivableByID retrieves a receivable with its payments populated.
func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	query := `
		SELECT receivable_id, customer, total_amount, paid_amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receivables
		WHERE receivable_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivable %s: %w", receivableID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanReceivable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receivable %s: %w", receivableID, err)
	}

	receivable := mapping.ToDomainReceivable(row)
	payments, err := r.listPayments(ctx, receivable.ReceivableID)
	if err != nil {
		return nil, err
	}
	receivable.Payments = payments
	return &receivable, nil
}

// ListReceivables retrieves all receivables with payments populated.
func (r *PgxReceivableRepository) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	query := `
		SELECT receivable_id, customer, total_amount, paid_amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receivables
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	modelReceivables, err := pgx.CollectRows(rows, scanReceivable)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receivables: %w", err)
	}

	out := make([]domain.Receivable, len(modelReceivables))
	for i, m := range modelReceivables {
		receivable := mapping.ToDomainReceivable(m)
		payments, err := r.listPayments(ctx, receivable.ReceivableID)
		if err != nil {
			return nil, err
		}
		receivable.Payments = payments
		out[i] = receivable
	}
	return out, nil
}

func (r *PgxReceivableRepository) listPayments(ctx context.Context, receivableID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, receivable_id, amount, payment_date, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE receivable_id = $1
		ORDER BY payment_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for receivable %s: %w", receivableID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments for receivable %s: %w", receivableID, err)
	}

	out := make([]domain.Payment, len(modelPayments))
	for i, m := range modelPayments {
		out[i] = mapping.ToDomainPayment(m)
	}
	return out, nil
}

// UpdateReceivable writes back every mutable field of a receivable,
// including the running paid amount.
func (r *PgxReceivableRepository) UpdateReceivable(ctx context.Context, receivable domain.Receivable) error {
	row := mapping.ToModelReceivable(receivable)

	query := `
		UPDATE receivables
		SET customer = $2, total_amount = $3, paid_amount = $4, last_updated_at = $5, last_updated_by = $6
		WHERE receivable_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		row.ReceivableID,
		row.Customer,
		row.TotalAmount,
		row.PaidAmount,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update receivable %s: %w", row.ReceivableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReceivable removes a receivable together with its payments. The
// ledger is untouched.
func (r *PgxReceivableRepository) DeleteReceivable(ctx context.Context, receivableID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE receivable_id = $1;`, receivableID); err != nil {
		return fmt.Errorf("failed to delete payments for receivable %s: %w", receivableID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM receivables WHERE receivable_id = $1;`, receivableID)
	if err != nil {
		return fmt.Errorf("failed to delete receivable %s: %w", receivableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SavePayment inserts a payment against a receivable.
func (r *PgxReceivableRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	row := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (payment_id, receivable_id, amount, payment_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.PaymentID,
		row.ReceivableID,
		row.Amount,
		row.Date,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", row.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a single payment.
func (r *PgxReceivableRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT payment_id, receivable_id, amount, payment_date, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE payment_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %s: %w", paymentID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanPayment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainPayment(row)
	return &payment, nil
}

// DeletePayment removes a payment belonging to a receivable. The ledger is
// untouched.
func (r *PgxReceivableRepository) DeletePayment(ctx context.Context, receivableID, paymentID string) error {
	query := `DELETE FROM payments WHERE payment_id = $1 AND receivable_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, paymentID, receivableID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
