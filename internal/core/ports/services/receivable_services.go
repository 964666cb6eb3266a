package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
)

// ReceivableReaderSvc defines read operations for receivables
type ReceivableReaderSvc interface {
	// GetReceivableByID retrieves a receivable with its payments.
	GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)

	// ListReceivables retrieves all receivables with their payments.
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
}

// ReceivableWriterSvc defines write operations for receivables
type ReceivableWriterSvc interface {
	// CreateReceivable registers an amount owed by a customer.
	CreateReceivable(ctx context.Context, actor domain.User, req dto.CreateReceivableRequest) (*domain.Receivable, error)

	// UpdateReceivable updates a receivable's customer or total.
	UpdateReceivable(ctx context.Context, actor domain.User, receivableID string, req dto.UpdateReceivableRequest) (*domain.Receivable, error)

	// DeleteReceivable removes a receivable and its payments. The ledger is
	// untouched.
	DeleteReceivable(ctx context.Context, actor domain.User, receivableID string) error
}

// ReceivablePaymentSvc defines operations on receivable payments
type ReceivablePaymentSvc interface {
	// RecordPayment records a payment against a receivable and emits the
	// matching inflow entry. Payments above the outstanding amount are
	// rejected.
	RecordPayment(ctx context.Context, actor domain.User, receivableID string, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes a payment and rolls its amount out of the paid
	// total. The ledger entry it produced stays.
	DeletePayment(ctx context.Context, actor domain.User, receivableID, paymentID string) error
}

// ReceivableSvcFacade combines all receivable service interfaces
type ReceivableSvcFacade interface {
	ReceivableReaderSvc
	ReceivableWriterSvc
	ReceivablePaymentSvc
}
