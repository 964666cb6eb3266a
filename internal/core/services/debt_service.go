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

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepository
	recorder portssvc.LedgerRecorder
}

// NewDebtService creates the debt service.
func NewDebtService(debtRepo portsrepo.DebtRepository, recorder portssvc.LedgerRecorder) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo, recorder: recorder}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) CreateDebt(ctx context.Context, actor domain.User, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.DebtCurrent
	}
	if status == domain.DebtSettled {
		return nil, fmt.Errorf("a debt cannot start settled: %w", apperrors.ErrValidation)
	}
	if status != domain.DebtCurrent && status != domain.DebtOverdue {
		return nil, fmt.Errorf("unknown debt status %q: %w", status, apperrors.ErrValidation)
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      status,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt")
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, actor domain.User, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt: %w", err)
	}

	if req.Name != nil {
		debt.Name = *req.Name
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		debt.Amount = *req.Amount
	}
	if req.DueDate != nil {
		debt.DueDate = *req.DueDate
	}
	if req.Status != nil {
		// Moving to settled must go through SettleDebt so the ledger entry
		// is emitted.
		if *req.Status == domain.DebtSettled {
			return nil, fmt.Errorf("use the settle action to settle a debt: %w", apperrors.ErrValidation)
		}
		if *req.Status != domain.DebtCurrent && *req.Status != domain.DebtOverdue {
			return nil, fmt.Errorf("unknown debt status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		debt.Status = *req.Status
	}
	debt.Touch(actor.UserID, time.Now())

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return debt, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, actor domain.User, debtID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.debtRepo.DeleteDebt(ctx, debtID); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}

// SettleDebt marks the debt settled and emits a matching outflow entry. A
// debt that is already settled comes back unchanged with no second entry.
func (s *debtService) SettleDebt(ctx context.Context, actor domain.User, debtID string) (*domain.Debt, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt: %w", err)
	}
	if debt.Status == domain.DebtSettled {
		return debt, nil
	}

	debt.Status = domain.DebtSettled
	debt.Touch(actor.UserID, time.Now())

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to settle debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to settle debt: %w", err)
	}

	// The debt stays settled regardless of what happens to the ledger
	// write; a recorder failure surfaces so the caller knows the cash entry
	// is missing.
	event := domain.LedgerEvent{
		Kind:         domain.EventDebtSettled,
		Amount:       debt.Amount,
		Counterparty: debt.Name,
		Date:         time.Now(),
		Note:         fmt.Sprintf("Settlement of debt %q", debt.Name),
	}
	if err := s.recorder.RecordEvent(ctx, actor, event); err != nil {
		s.LogError(ctx, err, "Debt settled but ledger entry missing", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("debt settled but ledger entry failed: %w", err)
	}

	return debt, nil
}
