package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
)

// DebtReaderSvc defines read operations for debts
type DebtReaderSvc interface {
	// GetDebtByID retrieves a debt by ID.
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts.
	ListDebts(ctx context.Context) ([]domain.Debt, error)
}

// DebtWriterSvc defines write operations for debts
type DebtWriterSvc interface {
	// CreateDebt registers a new debt.
	CreateDebt(ctx context.Context, actor domain.User, req dto.CreateDebtRequest) (*domain.Debt, error)

	// UpdateDebt updates an existing debt.
	UpdateDebt(ctx context.Context, actor domain.User, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes a debt. Deletion never touches the ledger.
	DeleteDebt(ctx context.Context, actor domain.User, debtID string) error

	// SettleDebt marks a debt settled and emits the matching outflow entry.
	// Settling an already-settled debt is a no-op.
	SettleDebt(ctx context.Context, actor domain.User, debtID string) (*domain.Debt, error)
}

// DebtSvcFacade combines all debt service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
