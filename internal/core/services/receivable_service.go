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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type receivableService struct {
	BaseService
	receivableRepo portsrepo.ReceivableRepository
	recorder       portssvc.LedgerRecorder
}

// NewReceivableService creates the receivable service.
func NewReceivableService(receivableRepo portsrepo.ReceivableRepository, recorder portssvc.LedgerRecorder) portssvc.ReceivableSvcFacade {
	return &receivableService{receivableRepo: receivableRepo, recorder: recorder}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func (s *receivableService) CreateReceivable(ctx context.Context, actor domain.User, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("total amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	receivable := domain.Receivable{
		ReceivableID: uuid.NewString(),
		Customer:     req.Customer,
		TotalAmount:  req.TotalAmount,
		PaidAmount:   decimal.Zero,
		AuditFields:  domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.receivableRepo.SaveReceivable(ctx, receivable); err != nil {
		s.LogError(ctx, err, "Failed to save receivable")
		return nil, fmt.Errorf("failed to create receivable: %w", err)
	}

	return &receivable, nil
}

func (s *receivableService) GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receivable: %w", err)
	}
	return receivable, nil
}

func (s *receivableService) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	if receivables == nil {
		return []domain.Receivable{}, nil
	}
	return receivables, nil
}

func (s *receivableService) UpdateReceivable(ctx context.Context, actor domain.User, receivableID string, req dto.UpdateReceivableRequest) (*domain.Receivable, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivable: %w", err)
	}

	if req.Customer != nil {
		receivable.Customer = *req.Customer
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.LessThan(receivable.PaidAmount) {
			return nil, fmt.Errorf("total cannot drop below the paid amount: %w", apperrors.ErrValidation)
		}
		receivable.TotalAmount = *req.TotalAmount
	}
	receivable.Touch(actor.UserID, time.Now())

	if err := s.receivableRepo.UpdateReceivable(ctx, *receivable); err != nil {
		s.LogError(ctx, err, "Failed to update receivable", slog.String("receivable_id", receivableID))
		return nil, fmt.Errorf("failed to update receivable: %w", err)
	}

	return receivable, nil
}

func (s *receivableService) DeleteReceivable(ctx context.Context, actor domain.User, receivableID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.receivableRepo.DeleteReceivable(ctx, receivableID); err != nil {
		s.LogError(ctx, err, "Failed to delete receivable", slog.String("receivable_id", receivableID))
		return fmt.Errorf("failed to delete receivable: %w", err)
	}
	return nil
}

// RecordPayment adds a payment, grows the paid total, and emits the
// matching inflow entry. Payments above the outstanding amount are
// rejected.
func (s *receivableService) RecordPayment(ctx context.Context, actor domain.User, receivableID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivable: %w", err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.Amount.GreaterThan(receivable.Outstanding()) {
		return nil, fmt.Errorf("payment of %s exceeds outstanding %s: %w",
			req.Amount.String(), receivable.Outstanding().String(), apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		ReceivableID: receivableID,
		Amount:       req.Amount,
		Date:         req.Date,
		AuditFields:  domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.receivableRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("receivable_id", receivableID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	receivable.PaidAmount = receivable.PaidAmount.Add(req.Amount)
	receivable.Touch(actor.UserID, now)
	if err := s.receivableRepo.UpdateReceivable(ctx, *receivable); err != nil {
		s.LogError(ctx, err, "Failed to update paid amount", slog.String("receivable_id", receivableID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	event := domain.LedgerEvent{
		Kind:         domain.EventReceivablePaymentRecorded,
		Amount:       payment.Amount,
		Counterparty: receivable.Customer,
		Date:         payment.Date,
		Note:         fmt.Sprintf("Payment from %s", receivable.Customer),
	}
	// The payment and paid amount stay recorded either way; a failed ledger
	// write surfaces to the caller.
	if err := s.recorder.RecordEvent(ctx, actor, event); err != nil {
		s.LogError(ctx, err, "Payment recorded but ledger entry missing", slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("payment recorded but ledger entry failed: %w", err)
	}

	return &payment, nil
}

// DeletePayment removes the payment and rolls its amount out of the paid
// total. The inflow entry it produced stays in the ledger.
func (s *receivableService) DeletePayment(ctx context.Context, actor domain.User, receivableID, paymentID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	payment, err := s.receivableRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("failed to load payment: %w", err)
	}
	if payment.ReceivableID != receivableID {
		return fmt.Errorf("payment %s does not belong to receivable %s: %w", paymentID, receivableID, apperrors.ErrNotFound)
	}

	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return fmt.Errorf("failed to load receivable: %w", err)
	}

	if err := s.receivableRepo.DeletePayment(ctx, receivableID, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	receivable.PaidAmount = receivable.PaidAmount.Sub(payment.Amount)
	if receivable.PaidAmount.IsNegative() {
		receivable.PaidAmount = decimal.Zero
	}
	receivable.Touch(actor.UserID, time.Now())
	if err := s.receivableRepo.UpdateReceivable(ctx, *receivable); err != nil {
		s.LogError(ctx, err, "Failed to roll back paid amount", slog.String("receivable_id", receivableID))
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
