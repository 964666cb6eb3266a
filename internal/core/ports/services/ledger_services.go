package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// LedgerRecorder turns entity-side events into cash ledger entries. It runs
// strictly after the owning entity's write has succeeded; a recorder failure
// never rolls the entity change back.
type LedgerRecorder interface {
	// RecordEvent derives a ledger entry from the event and appends it.
	RecordEvent(ctx context.Context, actor domain.User, event domain.LedgerEvent) error
}
