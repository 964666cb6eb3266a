package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// DebtRepository persists debts.
type DebtRepository interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, debt domain.Debt) error
	DeleteDebt(ctx context.Context, debtID string) error
}
