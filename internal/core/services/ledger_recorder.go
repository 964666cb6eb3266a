package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/platform/metrics"
	"github.com/google/uuid"
)

// ledgerRecorder appends cash entries derived from entity-side events. It
// runs strictly after the owning entity's write has committed; a recorder
// failure surfaces to the caller but is never grounds to undo the entity
// change.
type ledgerRecorder struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewLedgerRecorder creates the event-to-ledger recorder.
func NewLedgerRecorder(txnRepo portsrepo.TransactionRepository) portssvc.LedgerRecorder {
	return &ledgerRecorder{txnRepo: txnRepo}
}

var _ portssvc.LedgerRecorder = (*ledgerRecorder)(nil)

func (s *ledgerRecorder) RecordEvent(ctx context.Context, actor domain.User, event domain.LedgerEvent) error {
	entry, err := event.CashEntry()
	if err != nil {
		metrics.LedgerEventFailures.WithLabelValues(string(event.Kind)).Inc()
		return fmt.Errorf("failed to derive ledger entry: %w", err)
	}

	now := time.Now()
	entry.TransactionID = uuid.NewString()
	entry.AuditFields = domain.NewAuditFields(actor.UserID, now)

	if err := s.txnRepo.SaveTransaction(ctx, entry); err != nil {
		metrics.LedgerEventFailures.WithLabelValues(string(event.Kind)).Inc()
		s.LogError(ctx, err, "Ledger write failed after entity change committed",
			slog.String("kind", string(event.Kind)),
			slog.String("counterparty", event.Counterparty))
		return fmt.Errorf("failed to record ledger entry for %s: %w", event.Kind, err)
	}

	metrics.LedgerEventsTotal.WithLabelValues(string(event.Kind)).Inc()
	s.LogInfo(ctx, "Ledger entry recorded",
		slog.String("kind", string(event.Kind)),
		slog.String("transaction_id", entry.TransactionID))
	return nil
}
