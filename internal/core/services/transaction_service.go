package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the cash ledger facade. Reads always pull
// the full ledger and let the accounting package filter and order it.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates the cash ledger service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.User, req dto.CreateTransactionRequest) (*domain.CashTransaction, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if !req.Direction.Valid() {
		return nil, fmt.Errorf("unknown flow direction %q: %w", req.Direction, apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.CashTransaction{
		TransactionID: uuid.NewString(),
		Direction:     req.Direction,
		Amount:        req.Amount,
		Counterparty:  req.Counterparty,
		Date:          req.Date,
		Note:          req.Note,
		Category:      req.Category,
		AuditFields:   domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save cash transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactions returns ledger entries matching the params, newest
// first. At most one of the from-date and month filters applies.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.CashTransaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txns = applyLedgerFilters(txns, params)
	accounting.SortByDateDesc(txns)

	if txns == nil {
		return []domain.CashTransaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, actor domain.User, transactionID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete cash transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// applyLedgerFilters narrows the ledger per the list params. The month
// filter wins if both modes are somehow set.
func applyLedgerFilters(txns []domain.CashTransaction, params dto.ListTransactionsParams) []domain.CashTransaction {
	if params.FilterByMonth() {
		txns = accounting.FilterMonth(txns, params.Year, params.Month)
	} else if params.From != nil {
		txns = accounting.FilterFrom(txns, *params.From)
	}
	if params.Direction != nil {
		txns = accounting.FilterByDirection(txns, *params.Direction)
	}
	return txns
}
