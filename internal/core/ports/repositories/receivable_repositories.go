package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// ReceivableRepository persists receivables and their payments. Find and
// List return receivables with payments populated.
type ReceivableRepository interface {
	SaveReceivable(ctx context.Context, receivable domain.Receivable) error
	FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
	UpdateReceivable(ctx context.Context, receivable domain.Receivable) error
	DeleteReceivable(ctx context.Context, receivableID string) error

	SavePayment(ctx context.Context, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, receivableID, paymentID string) error
}
